// Package lvlab is a small collection of sequence and matrix drills written
// as a reusable, dependency-light Go library.
//
// 🚀 What is inside?
//
//	runs/    — remove maximal odd runs that share no value with a reference set
//	matrix/  — row-major Dense matrix, seeded random fill, negative-count margins
//	examples — runnable walkthroughs (go run ./examples)
//
// ✨ Why lvlab?
//
//   - Pure functions – no global state, safe for concurrent use with distinct inputs
//   - Generic where it matters – runs works on every Go integer type
//   - Errors, not panics – sentinel errors matched with errors.Is
//   - Hooks – observe every kept/dropped run without forking the algorithm
//
// Quick example:
//
//	runs.Filter([]int{1, 3, 5, 2, 4, 7, 9, 11, 6}, []int{9})
//	// [2 4 7 9 11 6]
//
//	go get github.com/katalvlaran/lvlab
package lvlab
