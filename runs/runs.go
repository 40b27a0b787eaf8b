// SPDX-License-Identifier: MIT

package runs

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Operation name constants for error wrapping.
const (
	opApply = "Apply"
)

// IsOdd reports whether x is not evenly divisible by two.
// Go's % truncates toward zero, so -3%2 == -1: the test is against zero, never
// against a positive remainder.
func IsOdd[E constraints.Integer](x E) bool {
	return x%2 != 0
}

// Runs returns every maximal odd run of a in left-to-right order.
// Returns nil when a holds no odd value.
//
// Complexity: O(N) time, O(R) memory for R runs.
func Runs[S ~[]E, E constraints.Integer](a S) []Run {
	var out []Run
	n := len(a)
	for i := 0; i < n; {
		if !IsOdd(a[i]) {
			i++
			continue
		}
		start := i
		for i < n && IsOdd(a[i]) {
			i++
		}
		out = append(out, Run{Start: start, End: i})
	}

	return out
}

// Members returns the distinct values of b in ascending order.
// Order and duplicates in b carry no meaning for Filter; Members is the
// canonical view of b that Filter actually consults.
func Members[S ~[]E, E constraints.Integer](b S) S {
	set := memberSet(b)
	keys := maps.Keys(set)
	slices.Sort(keys)

	return S(keys)
}

// Filter removes from a every maximal odd run that contains no value of b.
// Even values and runs that share at least one value with b are kept in their
// original order.  Neither a nor b is modified; the result is a new slice,
// empty (non-nil) when nothing survives.
//
// Example:
//
//	Filter([]int{1, 3, 5, 2, 4, 7, 9, 11, 6}, []int{9}) // [2 4 7 9 11 6]
//	Filter([]int{5}, []int{3})                          // []
//
// Complexity: O(N + M) time, O(N + M) memory.
func Filter[S ~[]E, E constraints.Integer](a, b S) S {
	out, _ := Apply(a, b, nil) // defaults always validate

	return out
}

// Apply is Filter with explicit options.  A nil opts means DefaultOptions().
//
// Algorithm:
//  1. Build the membership test for b per opts.Membership.
//  2. Scan a with cursor i.  An even a[i] is emitted and i advances by one.
//  3. An odd a[i] opens a run; advance while values stay odd → [start, end).
//  4. If any value of a[start:end] is a member of b, emit the run unchanged
//     and fire OnKeep; otherwise emit nothing and fire OnDrop.
//  5. Resume at end; stop at len(a).
//
// Errors:
//   - ErrBadMembership if opts.Membership is not SetLookup or LinearScan.
func Apply[S ~[]E, E constraints.Integer](a, b S, opts *Options) (S, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	var member func(E) bool
	switch o.Membership {
	case SetLookup:
		set := memberSet(b)
		member = func(x E) bool {
			_, ok := set[x]
			return ok
		}
	case LinearScan:
		member = func(x E) bool {
			return containsScan(b, x)
		}
	default:
		return nil, fmt.Errorf("%s: %v: %w", opApply, o.Membership, ErrBadMembership)
	}

	out := make(S, 0, len(a))
	n := len(a)
	for i := 0; i < n; {
		if !IsOdd(a[i]) {
			out = append(out, a[i])
			i++
			continue
		}

		start := i
		for i < n && IsOdd(a[i]) {
			i++
		}
		run := Run{Start: start, End: i}

		if anyMember(a[start:i], member) {
			out = append(out, a[start:i]...)
			if o.OnKeep != nil {
				o.OnKeep(run)
			}
		} else if o.OnDrop != nil {
			o.OnDrop(run)
		}
	}

	return out, nil
}

// memberSet loads b into a set.
func memberSet[S ~[]E, E constraints.Integer](b S) map[E]struct{} {
	set := make(map[E]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}

	return set
}

// containsScan reports whether x occurs in b, stopping at the first match.
func containsScan[S ~[]E, E constraints.Integer](b S, x E) bool {
	for _, v := range b {
		if v == x {
			return true
		}
	}

	return false
}

// anyMember reports whether some value of seg satisfies member.
func anyMember[S ~[]E, E constraints.Integer](seg S, member func(E) bool) bool {
	for _, v := range seg {
		if member(v) {
			return true
		}
	}

	return false
}
