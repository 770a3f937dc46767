// SPDX-License-Identifier: MIT
// Package: meshgen
//
// impl_platonic.go — closed triangulated solids.
//
// Contract:
//   • Every edge has exactly two incident faces: ExtractBoundary is empty.
//   • Faces are wound counter-clockwise seen from outside.
//   • Vertex positions are fixed tables; ids follow table order.

package meshgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
)

// PlatonicName enumerates the supported closed solids.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Cube                            // V=8,  F=12 (two triangles per square)
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return fmt.Sprintf("PlatonicName(%d)", int(p))
	}
}

type solid struct {
	positions []r3.Vec
	faces     [][3]int
}

var phi = (1 + math.Sqrt(5)) / 2

var platonicSolids = map[PlatonicName]solid{
	Tetrahedron: {
		positions: []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces:     [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},
	Cube: {
		positions: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		faces: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{1, 2, 6}, {1, 6, 5}, // right
			{2, 3, 7}, {2, 7, 6}, // back
			{3, 0, 4}, {3, 4, 7}, // left
		},
	},
	Octahedron: {
		positions: []r3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},
	Icosahedron: {
		positions: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}

// Platonic returns a fresh copy of the named closed solid.
func Platonic(name PlatonicName) (*mesh.Mesh, error) {
	s, ok := platonicSolids[name]
	if !ok {
		return nil, fmt.Errorf("%s: %v: %w", methodPlatonic, name, ErrUnknownSolid)
	}
	m, err := mesh.New(append([]r3.Vec(nil), s.positions...), append([][3]int(nil), s.faces...))
	if err != nil {
		return nil, meshgenErrorf(methodPlatonic, err)
	}

	return m, nil
}
