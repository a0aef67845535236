// Package lanczos reduces a real symmetric matrix to a similar
// tridiagonal one through Lanczos iterations over its Krylov subspace.
//
// 🚀 What is Lanczos tridiagonalization?
//
//	Starting from a normalized all-ones vector, each step multiplies by
//	A, projects out the current and previous basis directions, and
//	normalizes the residual into the next basis column.  After n−1
//	steps the orthonormal basis V satisfies T = VᵀAV with T
//	tridiagonal and similar to A — the expensive spectrum of A becomes
//	the cheap spectrum of T.  It’s the standard front-end for:
//	  • Large symmetric eigenvalue problems
//	  • Spectral analysis of graphs and physical Hamiltonians
//	  • Condition-number and extremal-eigenvalue estimation
//
// ✨ Key features:
//   - full re-orthogonalization via QR after every appended column —
//     floating-point drift never silently corrupts the basis
//   - replaceable basis-correction strategy (BasisCorrector) when the
//     full-QR cost must be traded for speed
//   - breakdown (exhausted Krylov subspace) reported as a tagged
//     Result, never a crash or a wrong-sized matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectral/lanczos"
//
//	res, err := lanczos.Tridiagonalize(a, nil) // default full-QR correction
//	if err != nil { ... }
//	if res.Breakdown {
//	  // res.Basis holds the partial orthonormal basis (n×k, k < n)
//	} else {
//	  // res.T is tridiagonal and similar to a; res.Basis is the full V
//	}
//
// Performance:
//
//   - Time:   O(n·n²) for the recurrence + O(n·n³) for full-QR correction
//   - Memory: O(n²)
//
// See examples in example_test.go and the eigen package for consuming T.
package lanczos
