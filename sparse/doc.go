// SPDX-License-Identifier: MIT

// Package sparse provides the assembly side of the conformal system:
// an append-only triplet list and compressed sparse row (CSR) storage on
// top of github.com/james-bowman/sparse. CSR.Matrix hands the storage to
// gonum's mat package.
//
// Assembly model:
//
//	var ts sparse.Triplets
//	ts.Add(i, j, v)            // duplicates allowed
//	ts = sparse.Symmetrize(ts) // optional: (T + Tᵀ)/2
//	m, err := sparse.FromTriplets(rows, cols, ts)
//
// FromTriplets sums every (row, col) duplicate; it never overwrites.
// Column indices inside each CSR row are strictly increasing, so every
// traversal of a CSR matrix is deterministic.
//
// Errors are package sentinels, wrapped with an operation tag; match them
// with errors.Is.
package sparse
