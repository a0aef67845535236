// Package spectral computes eigenvalues of real symmetric matrices
// through three classical iterative kernels, composable in a pipeline.
//
// 🚀 What is spectral?
//
//	A pure-Go numerical library that brings together:
//		• Lanczos tridiagonalization: reduce a symmetric n×n matrix to a
//		  similar tridiagonal one via an orthonormal Krylov basis
//		• Normalized Simultaneous (QR) Iteration: the full spectrum of a
//		  symmetric matrix by repeated orthogonal iteration
//		• Shifted Inverse Power Iteration: a single extremal eigenvalue
//		  via the shift-and-invert transform
//		• Dense primitives: QR / LU factorization, linear solve, MatVec
//
// ✨ Why choose spectral?
//
//   - Explicit results – converged, iteration-capped and breakdown states
//     are tagged values, never silent degradation
//   - Deterministic – fixed loop orders, explicit seeds, no global state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug a custom basis-correction strategy into Lanczos
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  — Dense storage, QR/LU factorizations, solve & MatVec kernels
//	lanczos/ — Krylov tridiagonalization with full re-orthogonalization
//	eigen/   — QR (NSI) spectrum iterator & shifted inverse power iterator
//
// Quick pipeline:
//
//	A ──lanczos.Tridiagonalize──▶ T ──eigen.QREigenvalues──▶ spectrum
//	                               └──eigen.InversePowerEigenvalue──▶ λ_min
//
// Dive into the package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/spectral
package spectral
