// SPDX-License-Identifier: MIT
// Package: meshgen
//
// impl_sdf.go — surfaces from sdfx signed distance fields.
//
// Contract:
//   • cells ≥ 2 (else ErrTooFewSegments).
//   • Triangles come from sdfx's uniform marching cubes renderer.
//   • Vertices closer than the weld tolerance are merged (grid snapping);
//     triangles that collapse after merging are dropped.
//   • No faces → ErrEmptyResult.

package meshgen

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
)

const minSDFCells = 2

// FromSDF polygonises s on a uniform grid of `cells` cubes along its longest
// bounding-box side and welds the resulting triangle soup.
func FromSDF(s sdf.SDF3, cells int, opts ...Option) (*mesh.Mesh, error) {
	if cells < minSDFCells {
		return nil, fmt.Errorf("%s: cells=%d: %w", methodFromSDF, cells, ErrTooFewSegments)
	}
	cfg := newConfig(opts...)
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	soup := make([][3]r3.Vec, 0, len(tris))
	for _, t := range tris {
		var f [3]r3.Vec
		for j := 0; j < 3; j++ {
			f[j] = r3.Vec{X: t[j].X, Y: t[j].Y, Z: t[j].Z}
		}
		soup = append(soup, f)
	}

	return Weld(soup, cfg.weldTol)
}

// Weld merges triangle-soup corners that snap to the same cell of a grid of
// step tol, in first-seen order, and drops faces that become degenerate.
func Weld(soup [][3]r3.Vec, tol float64) (*mesh.Mesh, error) {
	type cell struct{ x, y, z int64 }
	ids := make(map[cell]int, len(soup))
	var positions []r3.Vec
	faces := make([][3]int, 0, len(soup))
	key := func(p r3.Vec) cell {
		return cell{
			x: int64(math.Round(p.X / tol)),
			y: int64(math.Round(p.Y / tol)),
			z: int64(math.Round(p.Z / tol)),
		}
	}
	for _, t := range soup {
		k := [3]cell{key(t[0]), key(t[1]), key(t[2])}
		if k[0] == k[1] || k[1] == k[2] || k[0] == k[2] {
			continue
		}
		var f [3]int
		for j := range k {
			id, ok := ids[k[j]]
			if !ok {
				id = len(positions)
				ids[k[j]] = id
				positions = append(positions, t[j])
			}
			f[j] = id
		}
		faces = append(faces, f)
	}
	if len(faces) == 0 {
		return nil, meshgenErrorf(methodFromSDF, ErrEmptyResult)
	}

	m, err := mesh.New(positions, faces)
	if err != nil {
		return nil, meshgenErrorf(methodFromSDF, err)
	}

	return m, nil
}
