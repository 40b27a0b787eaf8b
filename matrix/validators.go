// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the guard checks shared by statistics and reporting.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMarginShape ensures r is exactly one row and one column larger than x,
// i.e. r can hold x plus its margins.
//
// Implementation: assumes x and r are not nil (caller must ensure).
// Returns ErrDimensionMismatch otherwise.
func ValidateMarginShape(x, r Matrix) error {
	if r.Rows() != x.Rows()+1 {
		return matrixErrorf("ValidateMarginShape: Rows", ErrDimensionMismatch)
	}
	if r.Cols() != x.Cols()+1 {
		return matrixErrorf("ValidateMarginShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
