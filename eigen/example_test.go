package eigen_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleQREigenvalues
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Extract the full spectrum of a small symmetric matrix. The exact
//	eigenvalues of [[2,1],[1,2]] are {1, 3}.
//
// Options:
//   - nil → DefaultOptions: tolerance 1e-14, at most 5000 iterations.
//
// Complexity: O(I·n³), I = iterations to tolerance.
func ExampleQREigenvalues() {
	a, err := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
	if err != nil {
		log.Fatal(err)
	}

	spec, err := eigen.QREigenvalues(a, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("status:", spec.Status)
	fmt.Printf("eigenvalues: %.4f\n", spec.Sorted())
	// Output:
	// status: converged
	// eigenvalues: [1.0000 3.0000]
}

// ExampleInversePowerEigenvalue demonstrates recovering the smallest
// eigenvalue of diag(1,2,3) with a shift placed far below the spectrum.
func ExampleInversePowerEigenvalue() {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	if err != nil {
		log.Fatal(err)
	}

	val, err := eigen.InversePowerEigenvalue(a, -100, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("status:", val.Status)
	fmt.Printf("lambda: %.6f\n", val.Lambda)
	// Output:
	// status: converged
	// lambda: 1.000000
}
