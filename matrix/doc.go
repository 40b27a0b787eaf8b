// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major float64 matrix and the
// negative-count margin statistic built on top of it.
//
// 🚀 What is a negative-count margin?
//
//	Given an N×M matrix X, NegativeMargins returns an (N+1)×(M+1) matrix R:
//
//	  R[0:N, 0:M] = X                      (source block, copied)
//	  R[i, M]     = #{ j : X[i,j] < 0 }     (per-row negative count)
//	  R[N, j]     = #{ i : X[i,j] < 0 }     (per-column negative count)
//	  R[N, M]     = #{ (i,j) : X[i,j] < 0 } (total negative count)
//
//	  X = [ 1 -2 ]      R = [ 1 -2 | 1 ]
//	      [-3 -4 ]          [-3 -4 | 2 ]
//	                        [------+---]
//	                        [ 1  2 | 3 ]
//
// ✨ Key features:
//   - Dense: row-major storage, At/Set return errors instead of panicking
//   - RandomInts: seeded uniform integer fill in a closed range
//   - CountNegatives / NegativeMargins: per-row, per-column and total counts
//   - WriteReport: fixed-width text report of source and result matrices
//
// Determinism:
//
//	Fixed i→j traversal everywhere.  For a fixed *rand.Rand seed RandomInts
//	always produces the same matrix.
//
// Errors are package-level sentinels ("matrix: ..."), wrapped with the
// operation name; match them with errors.Is.
package matrix
