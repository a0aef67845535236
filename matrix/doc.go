// Package matrix offers the dense linear-algebra primitives consumed by
// the iterative eigenvalue kernels (lanczos, eigen).
//
// The matrix package provides:
//
//   - Dense, a row-major float64 implementation of the Matrix interface,
//     with O(1) element access and a flat backing slice for cache
//     friendliness.
//   - Kernels: Mul, Sub, Transpose, Scale, MatVec, Diagonal, vector
//     norms and dot products.
//   - Factorizations: Householder QR (rectangular, thin orthogonal
//     factor with A = Q·R) and Doolittle LU without pivoting, plus a
//     single right-hand-side Solve built on the triangular factors.
//   - A seeded sparse symmetric generator for reproducible test inputs.
//
// All kernels validate fail-fast through the central validators, return
// package-level sentinel errors matchable via errors.Is, never mutate
// their inputs, and keep deterministic loop orders: identical inputs
// produce identical outputs, bit for bit.
//
// See the examples in this package and in eigen/lanczos for usage
// patterns.
package matrix
