// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Count strictly negative cells per row, per column and in total.
//   - Materialize those counts as margins around a copy of the source matrix.
//
// Exposed API:
//   - CountNegatives(X)  -> (rowCounts, colCounts, total)
//   - NegativeMargins(X) -> R (r+1)×(c+1)
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path reads the flat buffer directly.
//   - Zero is not negative; -0.0 is not negative either (-0.0 < 0 is false).

package matrix

import "fmt"

const (
	opCountNegatives  = "CountNegatives"
	opNegativeMargins = "NegativeMargins"
)

// CountNegatives returns, for an r×c matrix X, the number of cells < 0 in each
// row (len r), in each column (len c), and overall.
//
// Errors:
//   - ErrNilMatrix from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity: Time O(r*c), Space O(r+c).
func CountNegatives(X Matrix) (rowCounts, colCounts []int, total int, err error) {
	// Stage 1 (Validate): ensure X is present.
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, 0, matrixErrorf(opCountNegatives, err)
	}

	r, c := X.Rows(), X.Cols()
	rowCounts = make([]int, r)
	colCounts = make([]int, c)

	var i, j int
	var v float64

	// Stage 2 (Execute): Dense fast-path uses the row-major buffer directly.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if d.data[base+j] < 0 {
					rowCounts[i]++
					colCounts[j]++
					total++
				}
			}
		}

		return rowCounts, colCounts, total, nil
	}

	// Stage 2 (Execute fallback): At(i,j) with full error propagation.
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, nil, 0, matrixErrorf(opCountNegatives, err)
			}
			if v < 0 {
				rowCounts[i]++
				colCounts[j]++
				total++
			}
		}
	}

	return rowCounts, colCounts, total, nil
}

// NegativeMargins builds the (r+1)×(c+1) margin matrix of X:
//
//	R[0:r, 0:c] = X, R[i, c] = negatives in row i,
//	R[r, j] = negatives in column j, R[r, c] = total negatives.
//
// X itself is not modified.
//
// Errors:
//   - ErrNilMatrix from validation.
//   - ErrInvalidDimensions when X has a zero dimension.
//   - Wrapped At/Set errors.
//
// Complexity: Time O(r*c), Space O((r+1)*(c+1)).
func NegativeMargins(X Matrix) (*Dense, error) {
	rowCounts, colCounts, total, err := CountNegatives(X)
	if err != nil {
		return nil, matrixErrorf(opNegativeMargins, err)
	}

	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opNegativeMargins, r, c, ErrInvalidDimensions)
	}
	R, err := NewDense(r+1, c+1)
	if err != nil {
		return nil, matrixErrorf(opNegativeMargins, err)
	}

	// Stage 1: copy the source block row by row.
	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			copy(R.data[i*(c+1):i*(c+1)+c], d.data[i*c:(i+1)*c])
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opNegativeMargins, err)
				}
				R.data[i*(c+1)+j] = v
			}
		}
	}

	// Stage 2: margins.
	for i = 0; i < r; i++ {
		R.data[i*(c+1)+c] = float64(rowCounts[i])
	}
	for j = 0; j < c; j++ {
		R.data[r*(c+1)+j] = float64(colCounts[j])
	}
	R.data[r*(c+1)+c] = float64(total)

	return R, nil
}
