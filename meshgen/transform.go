// SPDX-License-Identifier: MIT
// Package: meshgen
//
// transform.go — derived meshes: Transform (per-vertex maps) and Clip
// (face selection with vertex compaction).

package meshgen

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
)

// Transform returns a copy of m with fn applied to every position. Faces are
// copied unchanged.
func Transform(m *mesh.Mesh, fn func(r3.Vec) r3.Vec) (*mesh.Mesh, error) {
	positions := make([]r3.Vec, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = fn(p)
	}
	out, err := mesh.New(positions, append([][3]int(nil), m.Faces...))
	if err != nil {
		return nil, meshgenErrorf(methodTransform, err)
	}

	return out, nil
}

// Scaled scales uniformly about the origin.
func Scaled(f float64) func(r3.Vec) r3.Vec {
	return func(p r3.Vec) r3.Vec { return r3.Scale(f, p) }
}

// Rotated rotates by angle radians about axis through the origin.
func Rotated(axis r3.Vec, angle float64) func(r3.Vec) r3.Vec {
	rot := r3.NewRotation(angle, axis)

	return rot.Rotate
}

// Translated translates by d.
func Translated(d r3.Vec) func(r3.Vec) r3.Vec {
	return func(p r3.Vec) r3.Vec { return r3.Add(p, d) }
}

// Clip keeps the faces whose centroid satisfies keep and drops vertices no
// longer referenced. Kept vertices retain their relative order. It also
// returns old→new id mapping (−1 for dropped vertices).
func Clip(m *mesh.Mesh, keep func(centroid r3.Vec) bool) (*mesh.Mesh, []int, error) {
	used := make([]bool, len(m.Positions))
	var kept [][3]int
	for _, f := range m.Faces {
		c := r3.Scale(1.0/3, r3.Add(r3.Add(m.Positions[f[0]], m.Positions[f[1]]), m.Positions[f[2]]))
		if keep(c) {
			kept = append(kept, f)
			used[f[0]], used[f[1]], used[f[2]] = true, true, true
		}
	}
	if len(kept) == 0 {
		return nil, nil, meshgenErrorf(methodClip, ErrEmptyResult)
	}
	remap := make([]int, len(m.Positions))
	var positions []r3.Vec
	for i, ok := range used {
		remap[i] = -1
		if ok {
			remap[i] = len(positions)
			positions = append(positions, m.Positions[i])
		}
	}
	faces := make([][3]int, len(kept))
	for i, f := range kept {
		faces[i] = [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	out, err := mesh.New(positions, faces)
	if err != nil {
		return nil, nil, meshgenErrorf(methodClip, err)
	}

	return out, remap, nil
}
