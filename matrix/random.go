// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Default closed range for RandomInts callers that have no preference.
const (
	DefaultRandomLo = -10
	DefaultRandomHi = 10
)

const opRandomInts = "RandomInts"

// RandomInts returns a rows×cols matrix whose cells are drawn uniformly from
// the closed integer range [lo, hi].
//
// Contract:
//   - rows, cols > 0 (else ErrInvalidDimensions).
//   - lo ≤ hi (else ErrBadRange).  Any such pair is accepted, including the
//     full [math.MinInt, math.MaxInt] range.
//   - rng non-nil (else ErrNeedRandSource); the package never seeds its own.
//
// Determinism:
//   - Cells are drawn in i→j order, so a fixed seed always yields the same matrix.
//
// Notes:
//   - Cells are float64; integers beyond ±2^53 are rounded to the nearest
//     representable value.
//
// Complexity: O(rows*cols).
func RandomInts(rows, cols, lo, hi int, rng *rand.Rand) (*Dense, error) {
	if lo > hi {
		return nil, fmt.Errorf("%s: lo=%d > hi=%d: %w", opRandomInts, lo, hi, ErrBadRange)
	}
	if rng == nil {
		return nil, matrixErrorf(opRandomInts, ErrNeedRandSource)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandomInts, err)
	}

	// hi-lo computed in uint64 cannot overflow for lo ≤ hi.
	span := uint64(hi) - uint64(lo)
	for k := range m.data {
		m.data[k] = float64(int(uint64(lo) + drawOffset(rng, span)))
	}

	return m, nil
}

// drawOffset returns a uniform value in [0, span].
// Spans that fit an int keep using Intn so small ranges draw the same
// sequence as rng.Intn would.
func drawOffset(rng *rand.Rand, span uint64) uint64 {
	if span == math.MaxUint64 {
		return rng.Uint64()
	}
	n := span + 1
	if n <= math.MaxInt {
		return uint64(rng.Intn(int(n)))
	}
	if n <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(n)))
	}
	// n > 2^63: accept with probability > 1/2.
	for {
		if v := rng.Uint64(); v < n {
			return v
		}
	}
}
