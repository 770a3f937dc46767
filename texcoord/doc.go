// SPDX-License-Identifier: MIT

// Package texcoord turns a mesh snapshot into per-vertex 2D coordinates
// with a selectable method.
//
//	None                   copies (Y, Z) of every position
//	LeastSquaresConformal  lscm, pair pinned at (−1,0) and (1,0)
//	SpectralConformal      scm, then normalised on the pair
//
// An Engine keeps one solver per method and reuses it while the mesh,
// boundary and reference pair are unchanged: repeated LSCM solves reuse the
// factorisation, repeated SCM solves reuse the eigenvector.
//
// Failures never produce coordinates. The Result carries StatusSolveFailed
// and the error explains why; callers keep whatever they displayed before.
package texcoord
