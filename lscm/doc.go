// SPDX-License-Identifier: MIT

// Package lscm implements least-squares conformal maps.
//
// The energy matrix is Q = 2A − Ld (package operator), positive semidefinite
// with a kernel spanned by global similarities. Pinning the u and v
// coordinates of two distinct vertices removes that kernel; the remaining
// unknowns solve
//
//	Q_ff · x_f = −Q_fc · x_c
//
// where f are the 2n−4 free unknowns and c the four pinned ones.
//
// Lifecycle:
//
//	var s lscm.Solver               // Default
//	err := s.Init(pos, faces, bnd, pair) // Initialized: Q_ff factorised
//	err = s.Solve(values, uv)       // cheap, repeatable
//	err = s.Reinit(otherPair)       // new pins, same mesh
//
// A Solver must not be used from several goroutines at once.
package lscm
