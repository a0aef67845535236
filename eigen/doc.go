// Package eigen extracts eigenvalues from symmetric matrices through
// two iterative kernels: Normalized Simultaneous (QR) Iteration for the
// full spectrum and shifted Inverse Power Iteration for a single
// extremal eigenvalue.
//
// 🚀 What do the kernels do?
//
//	QREigenvalues drives an orthogonal matrix Q through repeated
//	QR factorizations of A·Q; the diagonal Rayleigh quotients of QᵀAQ
//	converge to the full eigenvalue spectrum of A.
//
//	InversePowerEigenvalue applies power iteration to (A − sI)⁻¹ via
//	linear solves: the dominant eigenvalue of the inverted shifted
//	matrix maps back to the eigenvalue of A nearest the shift s.  A
//	shift far below the spectrum makes the target the smallest
//	eigenvalue and keeps the shifted system positive definite.
//
// ✨ Key features:
//   - typed results: Converged vs IterationCapped is an explicit Status,
//     never a silent best-effort return
//   - raw diagonal order and sorted order are kept distinct — Values
//     preserves extraction order, Sorted() is an explicit copy
//   - a coincident shift (singular shifted system) surfaces
//     matrix.ErrSingular as a hard error, never a swallowed NaN
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectral/eigen"
//
//	spec, err := eigen.QREigenvalues(t, nil) // defaults: tol 1e-14, 5000 iters
//	if err != nil { ... }
//	if spec.Status == eigen.IterationCapped {
//	  // best-available estimate after MaxIterations
//	}
//	lams := spec.Sorted()
//
//	val, err := eigen.InversePowerEigenvalue(t, -3000, nil)
//	// val.Lambda ≈ smallest eigenvalue of t
//
// Performance:
//
//   - QREigenvalues:          O(I·n³), I = iterations to tolerance
//   - InversePowerEigenvalue: O(I·n³) (one LU solve per step)
//
// Both kernels pair naturally with lanczos.Tridiagonalize, which shrinks
// the spectral problem to a tridiagonal similarity first.
package eigen
