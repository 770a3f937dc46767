// SPDX-License-Identifier: MIT

// Package operator assembles the sparse bilinear forms of the discrete
// conformal energy over 2n unknowns x = (u₀…uₙ₋₁, v₀…vₙ₋₁):
//
//   - CotanLaplacian Ld, negative semidefinite: −xᵀ·Ld·x = 2·E_D, where E_D
//     is the Dirichlet energy of the piecewise-linear map.
//   - VectorArea A, built from directed boundary edges only:
//     xᵀ·A·x = −Area(x), the negated signed area enclosed by the image of
//     the boundary.
//   - BoundaryMass B: 0.5 on both endpoints of every boundary edge, in both
//     coordinate blocks.
//
// The conformal energy matrix is Lc = 2A − Ld, so xᵀ·Lc·x = 2(E_D − Area),
// which is non-negative and vanishes exactly on orientation-preserving
// conformal maps. Every builder returns triplets; duplicates are summed by
// sparse.FromTriplets.
package operator
