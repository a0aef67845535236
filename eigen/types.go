// SPDX-License-Identifier: MIT

// Package eigen: options, statuses and the typed result values.
package eigen

import (
	"errors"
	"fmt"
	"sort"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the convergence threshold on the residual
	// between successive eigenvalue estimates.
	DefaultTolerance = 1e-14

	// DefaultMaxIterations caps both iterative kernels. Hitting the cap
	// is reported via Status, not an error.
	DefaultMaxIterations = 5000
)

var (
	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("eigen: tolerance must be > 0")

	// ErrBadMaxIterations indicates a max-iteration count below 1.
	ErrBadMaxIterations = errors.New("eigen: max iterations must be >= 1")
)

// Operation name constants for unified error wrapping.
const (
	opNSI = "QREigenvalues"
	opIPI = "InversePowerEigenvalue"
)

// eigenErrorf wraps err with an operation tag, preserving errors.Is.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Status reports how an iterative kernel terminated.
type Status int

const (
	// Converged: the residual dropped below the tolerance.
	Converged Status = iota

	// IterationCapped: MaxIterations elapsed first; the carried value is
	// the best available estimate, not a converged one.
	IterationCapped
)

// String implements fmt.Stringer for logs and examples.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationCapped:
		return "iteration-capped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Options configures the iterative kernels.
//
// Fields:
//   - Tol           — convergence threshold (> 0).
//   - MaxIterations — hard cap on iterations (≥ 1).
//
// A nil *Options in the kernel calls means DefaultOptions().
type Options struct {
	Tol           float64
	MaxIterations int
}

// DefaultOptions returns the reference configuration: tolerance 1e-14,
// at most 5000 iterations.
func DefaultOptions() Options {
	return Options{Tol: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// resolveOptions applies defaults and validates the configuration.
// Returns ErrBadTolerance or ErrBadMaxIterations on nonsensical values.
func resolveOptions(tag string, opts *Options) (Options, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Tol <= 0 {
		return Options{}, eigenErrorf(tag, ErrBadTolerance)
	}
	if cfg.MaxIterations < 1 {
		return Options{}, eigenErrorf(tag, ErrBadMaxIterations)
	}

	return cfg, nil
}

// Spectrum is the typed result of the QR eigenvalue iterator.
//
// Values preserves the raw diagonal extraction order — NOT sorted; the
// simultaneous iteration tends to order by descending magnitude, but no
// ordering is guaranteed. Callers needing sorted output must use
// Sorted() explicitly, which is the point: raw and sorted views cannot
// be confused silently.
type Spectrum struct {
	// Values are the approximate eigenvalues in diagonal order.
	Values []float64
	// Status distinguishes convergence from cap exhaustion.
	Status Status
	// Iterations is the number of QR iterations performed.
	Iterations int
}

// Sorted returns a fresh ascending copy of Values; the receiver is not
// mutated.
// Complexity: O(n log n).
func (s Spectrum) Sorted() []float64 {
	out := make([]float64, len(s.Values))
	copy(out, s.Values)
	sort.Float64s(out)

	return out
}

// Value is the typed result of the inverse power iterator.
type Value struct {
	// Lambda is the approximate eigenvalue nearest the shift.
	Lambda float64
	// Status distinguishes convergence from cap exhaustion.
	Status Status
	// Iterations is the number of solve steps performed.
	Iterations int
}
