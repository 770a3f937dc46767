// SPDX-License-Identifier: MIT
// Package: meshgen
//
// impl_grid.go — Grid(cols, rows).
//
// Contract:
//   • cols ≥ 1, rows ≥ 1 (else ErrTooFewSegments).
//   • (cols+1)·(rows+1) vertices; id(i,j) = j·(cols+1) + i for column i, row j.
//   • Vertex (i,j) sits at (−sx/2 + i·sx/cols, −sy/2 + j·sy/rows, h(x,y)).
//   • Each cell (i,j) emits (a,b,c) and (a,c,d) with a=(i,j), b=(i+1,j),
//     c=(i+1,j+1), d=(i,j+1): counter-clockwise from +Z.
//   • Corners: id 0 = (−,−), id cols = (+,−), id (cols+1)·rows = (−,+),
//     id (cols+1)·(rows+1)−1 = (+,+).
//
// Complexity: O(cols·rows).
// Determinism: jitter draws from a seeded source in id order.

package meshgen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
)

const minGridCells = 1

// Grid builds a rectangular sheet of cols×rows quads split into triangles.
func Grid(cols, rows int, opts ...Option) (*mesh.Mesh, error) {
	if cols < minGridCells || rows < minGridCells {
		return nil, fmt.Errorf("%s: cols=%d rows=%d: %w", methodGrid, cols, rows, ErrTooFewSegments)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()
	dx, dy := cfg.sizeX/float64(cols), cfg.sizeY/float64(rows)

	positions := make([]r3.Vec, 0, (cols+1)*(rows+1))
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			x := -cfg.sizeX/2 + float64(i)*dx
			y := -cfg.sizeY/2 + float64(j)*dy
			if cfg.jitter > 0 {
				jx := (2*rng.Float64() - 1) * cfg.jitter * dx
				jy := (2*rng.Float64() - 1) * cfg.jitter * dy
				if i > 0 && i < cols && j > 0 && j < rows {
					x, y = x+jx, y+jy
				}
			}
			z := 0.0
			if cfg.height != nil {
				z = cfg.height(x, y)
			}
			positions = append(positions, r3.Vec{X: x, Y: y, Z: z})
		}
	}

	id := func(i, j int) int { return j*(cols+1) + i }
	faces := make([][3]int, 0, 2*cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a, b, c, d := id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)
			faces = append(faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	m, err := mesh.New(positions, faces)
	if err != nil {
		return nil, meshgenErrorf(methodGrid, err)
	}

	return m, nil
}

// GridCorners returns the ids of the (−,−), (+,−), (+,+), (−,+) corners of
// Grid(cols, rows).
func GridCorners(cols, rows int) [4]int {
	return [4]int{0, cols, (cols+1)*(rows+1) - 1, (cols + 1) * rows}
}
