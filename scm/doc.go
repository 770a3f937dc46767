// SPDX-License-Identifier: MIT

// Package scm computes spectral conformal maps.
//
// The layout is an eigenvector of the generalised problem
//
//	Lc·x = λ·B·x,   Lc = 2A − Ld,
//
// where Ld is the cotangent Laplacian, A the vector area form and B the
// boundary mass (see package operator). Global translations lie in the
// kernel of Lc; they are supplied to the eigen solver as deflation vectors
// and come back as the first two pairs, so the layout is pair index 2.
//
// No vertex is pinned. The result carries an arbitrary similarity and is
// meant to be passed through package normalize.
//
// Lifecycle:
//
//	Default ──Init──▶ Initialized ──Solve──▶ Solved
//	   ▲                                       │
//	   └──────────── Init (new mesh) ◀─────────┘
//
// Solve is lazy: the first call runs the eigen solve, later calls copy the
// cached eigenvector.
package scm
