// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlab/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing non-*Dense
// fallback paths in code under test.
type hide struct{ matrix.Matrix }

// NewFilledDense allocates an r×c *Dense from row-major data or fails the test.
func NewFilledDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// Flatten reads m in row-major order or fails the test.
func Flatten(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}

// shapeOnly is a Matrix with arbitrary (possibly zero) dimensions and no
// cells; *Dense cannot represent a zero-size matrix.
type shapeOnly struct{ r, c int }

func (s shapeOnly) Rows() int { return s.r }
func (s shapeOnly) Cols() int { return s.c }
func (s shapeOnly) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (s shapeOnly) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (s shapeOnly) Clone() matrix.Matrix { return s }
