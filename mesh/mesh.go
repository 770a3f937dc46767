// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an immutable snapshot of a triangle mesh. Vertex ids are dense in
// [0, len(Positions)). Callers must not mutate the slices after New.
type Mesh struct {
	Positions []r3.Vec
	Faces     [][3]int
}

// New validates positions and faces and returns a Mesh borrowing both slices.
//
// Errors:
//   - ErrEmptyMesh if either slice is empty.
//   - ErrNonFinite for NaN/Inf coordinates.
//   - ErrVertexOutOfRange, ErrRepeatedVertex for malformed faces.
func New(positions []r3.Vec, faces [][3]int) (*Mesh, error) {
	m := &Mesh{Positions: positions, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate re-runs the checks performed by New.
func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 || len(m.Faces) == 0 {
		return meshErrorf(opNew, ErrEmptyMesh)
	}
	for i, p := range m.Positions {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return meshErrorf(opNew, fmt.Errorf("vertex %d: %w", i, ErrNonFinite))
		}
	}

	return ValidateFaces(len(m.Positions), m.Faces)
}

// ValidateFaces checks that every face references three distinct ids in [0,n).
func ValidateFaces(n int, faces [][3]int) error {
	for fi, f := range faces {
		for _, v := range f {
			if v < 0 || v >= n {
				return meshErrorf(opNew, fmt.Errorf("face %d: id %d: %w", fi, v, ErrVertexOutOfRange))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return meshErrorf(opNew, fmt.Errorf("face %d: %w", fi, ErrRepeatedVertex))
		}
	}

	return nil
}

// VertexCount returns n.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// Boundary is a shorthand for ExtractBoundary(m.Faces).
func (m *Mesh) Boundary() ([]BoundaryEdge, error) {
	return ExtractBoundary(m.Faces)
}

// Bounds returns the centre of the axis-aligned bounding box and the radius of
// the smallest sphere around that centre containing every vertex.
func (m *Mesh) Bounds() (center r3.Vec, radius float64) {
	if len(m.Positions) == 0 {
		return r3.Vec{}, 0
	}
	lo, hi := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	center = r3.Scale(0.5, r3.Add(lo, hi))
	for _, p := range m.Positions {
		radius = math.Max(radius, r3.Norm(r3.Sub(p, center)))
	}

	return center, radius
}

// VertexNormals returns area-weighted unit normals. Vertices touched by no
// face, or whose weighted sum cancels, get the zero vector.
func (m *Mesh) VertexNormals() []r3.Vec {
	normals := make([]r3.Vec, len(m.Positions))
	for _, f := range m.Faces {
		a, b, c := m.Positions[f[0]], m.Positions[f[1]], m.Positions[f[2]]
		// cross product length is twice the face area: the weighting we want
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		for _, v := range f {
			normals[v] = r3.Add(normals[v], n)
		}
	}
	for i, n := range normals {
		if l := r3.Norm(n); l > 0 {
			normals[i] = r3.Scale(1/l, n)
		}
	}

	return normals
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
