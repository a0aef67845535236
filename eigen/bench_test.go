package eigen_test

import (
	"testing"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// benchOptions bounds the iteration count so benchmark cost stays
// proportional to n, independent of spectral gaps.
func benchOptions() eigen.Options {
	opts := eigen.DefaultOptions()
	opts.MaxIterations = 200
	return opts
}

// BenchmarkQREigenvalues_Small benchmarks the QR iterator on a seeded
// 16×16 symmetric matrix.
func BenchmarkQREigenvalues_Small(b *testing.B) {
	a, err := matrix.NewSymmetricRandom(16, 1, 1)
	if err != nil {
		b.Fatalf("generator failed: %v", err)
	}
	opts := benchOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = eigen.QREigenvalues(a, &opts); err != nil {
			b.Fatalf("QREigenvalues failed: %v", err)
		}
	}
}

// BenchmarkQREigenvalues_Medium benchmarks the QR iterator on a seeded
// 48×48 symmetric matrix.
func BenchmarkQREigenvalues_Medium(b *testing.B) {
	a, err := matrix.NewSymmetricRandom(48, 1, 1)
	if err != nil {
		b.Fatalf("generator failed: %v", err)
	}
	opts := benchOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eigen.QREigenvalues(a, &opts); err != nil {
			b.Fatalf("QREigenvalues failed: %v", err)
		}
	}
}

// BenchmarkInversePowerEigenvalue benchmarks the shift-and-invert
// iterator on a seeded 48×48 symmetric matrix with a far-below shift.
func BenchmarkInversePowerEigenvalue(b *testing.B) {
	a, err := matrix.NewSymmetricRandom(48, 1, 1)
	if err != nil {
		b.Fatalf("generator failed: %v", err)
	}
	opts := benchOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eigen.InversePowerEigenvalue(a, -3000, &opts); err != nil {
			b.Fatalf("InversePowerEigenvalue failed: %v", err)
		}
	}
}
