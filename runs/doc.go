// SPDX-License-Identifier: MIT

// Package runs filters maximal runs of odd integers out of a sequence.
//
// 🚀 What is a run?
//
//	A run is a maximal contiguous slice of odd values: it cannot be grown to
//	the left or to the right without hitting an even value or the sequence
//	boundary.  Even values always separate runs, so two runs never touch.
//
//	  a = [1 3 5 2 4 7 9 11 6]
//	       └─┬─┘     └──┬──┘
//	       [0,3)      [5,8)
//
// ✨ Key features:
//   - Filter(a, b): drop every run of a that shares no value with b
//   - Runs(a): enumerate the maximal odd runs as half-open [Start, End) ranges
//   - Members(b): the distinct membership set of b, sorted ascending
//   - Apply(a, b, opts): Filter with a membership strategy and OnKeep/OnDrop hooks
//   - generic over every Go integer type (constraints.Integer)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlab/runs"
//
//	out := runs.Filter([]int{1, 3, 5, 2, 4, 7, 9, 11, 6}, []int{9})
//	// out == [2 4 7 9 11 6]
//
// Guarantees:
//   - a and b are never mutated; the result is always a fresh slice.
//   - survivors keep their original relative order.
//   - Filter is total and idempotent: Filter(Filter(a, b), b) == Filter(a, b).
//   - negative odd values are odd (-3 % 2 == -1 ≠ 0).
//
// Performance:
//
//   - SetLookup:  O(N + M) time, O(M) extra memory (default)
//   - LinearScan: O(N·M) time, no extra memory for b
//
// All functions are pure and safe for concurrent use with distinct inputs.
package runs
