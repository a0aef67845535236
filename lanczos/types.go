// SPDX-License-Identifier: MIT

// Package lanczos: options, strategies and the tagged result type.
package lanczos

import "github.com/katalvlaran/spectral/matrix"

// SymmetryEps is the tolerance used to validate input symmetry before
// iterating. Violations beyond it fail fast with matrix.ErrAsymmetry
// instead of silently degrading convergence.
const SymmetryEps = 1e-9

// BasisCorrector repairs the orthonormality of a growing basis matrix
// after a column append. Floating-point arithmetic loses orthogonality
// among Lanczos vectors within a few steps; the corrector is invoked
// once per appended column with the n×k basis and must return a basis
// of identical shape.
type BasisCorrector interface {
	// Correct returns the corrected basis. Implementations must not
	// mutate v.
	Correct(v *matrix.Dense) (*matrix.Dense, error)
}

// FullQR re-orthonormalizes the whole basis through a Householder QR
// factorization, keeping only the orthogonal factor. Costly but exact
// up to roundoff; this is the default strategy.
type FullQR struct{}

// Correct implements BasisCorrector via matrix.QRFactor.
// Complexity: O(n²·k) per call.
func (FullQR) Correct(v *matrix.Dense) (*matrix.Dense, error) {
	q, _, err := matrix.QRFactor(v)
	if err != nil {
		return nil, err
	}

	return q, nil
}

// None performs no correction and returns the basis unchanged. Use only
// for short iterations or experiments; orthogonality drift will degrade
// the similarity of T to the input.
type None struct{}

// Correct implements BasisCorrector as the identity strategy.
func (None) Correct(v *matrix.Dense) (*matrix.Dense, error) {
	return v, nil
}

// Options configures Tridiagonalize.
//
// Fields:
//   - Corrector — basis-correction strategy applied after every
//     appended column. nil falls back to FullQR.
type Options struct {
	Corrector BasisCorrector
}

// DefaultOptions returns the reference configuration: full QR
// re-orthogonalization after every appended column.
func DefaultOptions() Options {
	return Options{Corrector: FullQR{}}
}

// Result is the tagged outcome of a tridiagonalization run.
//
// Breakdown == false: T holds the n×n tridiagonal matrix VᵀAV and
// Basis the full orthonormal V.
//
// Breakdown == true: the Krylov subspace was exhausted before spanning
// the full space; T is nil and Basis holds the partial n×k (k < n)
// orthonormal basis. Callers must branch on Breakdown explicitly.
type Result struct {
	// T is the tridiagonal similarity VᵀAV; nil on breakdown.
	T *matrix.Dense
	// Basis is the orthonormal Lanczos basis V (partial on breakdown).
	Basis *matrix.Dense
	// Breakdown reports premature termination on a vanished residual.
	Breakdown bool
	// Steps counts completed recurrence steps beyond the initial vector.
	Steps int
}
