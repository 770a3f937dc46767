// SPDX-License-Identifier: MIT

// Package normalize fixes the similarity gauge of a planar layout.
//
// Conformal layouts are defined up to rotation, uniform scale and
// translation. Canonical removes that freedom by mapping a reference vertex
// pair to (−1,0) and (1,0):
//
//	m = (p₀ + p₁)/2,  d = p₁ − p₀
//	p′ = 2/|d|² · ( d·(p − m),  d⊥·(p − m) ),   d⊥ = (−d.y, d.x)
//
// The map is orientation preserving, so a counter-clockwise triangle stays
// counter-clockwise.
package normalize
