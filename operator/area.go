// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/sparse"
)

// VectorArea returns the symmetrised vector area form A for 2n unknowns.
//
// Each directed boundary edge (v0 → v1) contributes the cross-block pair
//
//	(v0, n+v1, −½)   (v1, n+v0, +½)
//
// i.e. −½(u₀v₁ − u₁v₀), minus the edge's term of the shoelace formula. The
// list is then symmetrised so that A = (A + Aᵀ)/2 and xᵀAx = −Area(x).
// Interior edges never contribute.
func VectorArea(n int, boundary []mesh.BoundaryEdge) (sparse.Triplets, error) {
	if err := checkBoundary(n, boundary); err != nil {
		return nil, operatorErrorf(opArea, err)
	}
	raw := make(sparse.Triplets, 0, 2*len(boundary))
	for _, e := range boundary {
		raw.Add(e.From, n+e.To, -0.5)
		raw.Add(e.To, n+e.From, 0.5)
	}

	return sparse.Symmetrize(raw), nil
}

// BoundaryMass returns B: weight ½ on both endpoints of every boundary edge,
// in the u block and again in the v block. A vertex on k boundary edges
// accumulates k/2 per block.
func BoundaryMass(n int, boundary []mesh.BoundaryEdge) (sparse.Triplets, error) {
	if err := checkBoundary(n, boundary); err != nil {
		return nil, operatorErrorf(opMass, err)
	}
	out := make(sparse.Triplets, 0, 4*len(boundary))
	for _, e := range boundary {
		for _, v := range [2]int{e.From, e.To} {
			out.Add(v, v, 0.5)
			out.Add(n+v, n+v, 0.5)
		}
	}

	return out, nil
}

func checkBoundary(n int, boundary []mesh.BoundaryEdge) error {
	for i, e := range boundary {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("edge %d (%d,%d): %w", i, e.From, e.To, ErrBoundaryOutOfRange)
		}
	}

	return nil
}
