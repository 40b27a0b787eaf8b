// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (wrapped with context) and
// tests check them via errors.Is. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a data
	// slice whose length is not rows*cols, or a report whose result matrix is
	// not (N+1)×(M+1).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNeedRandSource indicates that a random fill was requested without an RNG.
	ErrNeedRandSource = errors.New("matrix: random source is required")

	// ErrBadRange indicates an empty closed range (lo > hi).
	ErrBadRange = errors.New("matrix: invalid value range")
)

// matrixErrorf prefixes err with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
