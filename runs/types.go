// SPDX-License-Identifier: MIT

package runs

import "strconv"

// Run is one maximal odd run of a sequence, as the half-open index range
// [Start, End).  0 ≤ Start < End ≤ len(seq) always holds for runs produced
// by this package.
type Run struct {
	Start int // index of the first odd element
	End   int // index one past the last odd element
}

// Len returns the number of elements covered by r.
func (r Run) Len() int {
	return r.End - r.Start
}

// String renders r as "[start,end)".
func (r Run) String() string {
	return "[" + strconv.Itoa(r.Start) + "," + strconv.Itoa(r.End) + ")"
}

// Membership selects how values of a run are tested against b.
//
//   - SetLookup  — b is loaded into a hash set once; each test is O(1).
//     Total time O(N + M).
//
//   - LinearScan — every test walks b from the start and stops at the first
//     match.  Total time O(N·M), no extra memory for b.  Useful when b is tiny.
//
// Both strategies produce identical results.
type Membership int

const (
	// SetLookup backs membership tests with a map (default).
	SetLookup Membership = iota

	// LinearScan backs membership tests with a nested scan of b.
	LinearScan
)

// String implements fmt.Stringer.
func (m Membership) String() string {
	switch m {
	case SetLookup:
		return "SetLookup"
	case LinearScan:
		return "LinearScan"
	default:
		return "Membership(" + strconv.Itoa(int(m)) + ")"
	}
}

// Options configures Apply.
//
// Fields:
//   - Membership — strategy for the run/b intersection test.
//   - OnKeep     — if non-nil, called for every run that survives.
//   - OnDrop     — if non-nil, called for every run that is removed.
//
// Hooks fire exactly once per maximal run, in left-to-right order, with
// Start/End indexing into the input a (not into the result).
//
// Example:
//
//	opts := runs.DefaultOptions()
//	opts.OnDrop = func(r runs.Run) { dropped += r.Len() }
//	out, err := runs.Apply(a, b, &opts)
type Options struct {
	Membership Membership
	OnKeep     func(Run)
	OnDrop     func(Run)
}

// DefaultOptions returns the options used by Filter: SetLookup, no hooks.
func DefaultOptions() Options {
	return Options{Membership: SetLookup}
}
