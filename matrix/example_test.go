// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlab/matrix"
)

// ExampleNegativeMargins appends per-row, per-column and total negative
// counts around a 2×3 matrix.
func ExampleNegativeMargins() {
	X, _ := matrix.NewDenseFrom(2, 3, []float64{
		-1, 2, -3,
		4, -5, 6,
	})
	R, err := matrix.NegativeMargins(X)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(R)
	// Output:
	// [-1, 2, -3, 2]
	// [4, -5, 6, 1]
	// [1, 1, 1, 3]
}

// ExampleWriteReport prints the fixed-width report for a 1×2 matrix.
func ExampleWriteReport() {
	X, _ := matrix.NewDenseFrom(1, 2, []float64{-7, 3})
	R, _ := matrix.NegativeMargins(X)
	if err := matrix.WriteReport(os.Stdout, X, R); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Source matrix:
	//   -7   3
	//
	// Result matrix:
	//   -7   3   1
	//    1   0   1
	//
	// Notes:
	// - The last column holds the number of negative elements in each row
	// - The last row holds the number of negative elements in each column
	// - The bottom-right cell holds the total number of negative elements
}
