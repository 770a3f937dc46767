// SPDX-License-Identifier: MIT
// Package: meshgen
//
// impl_disk.go — Disk(rings, segments) and Hemisphere(rings, segments).
//
// Both are a wheel refined radially: a hub vertex (id 0) and `rings`
// concentric cycles of `segments` vertices.
//
// Contract:
//   • rings ≥ 1, segments ≥ 3 (else ErrTooFewSegments).
//   • 1 + rings·segments vertices; RingVertex(r, s) = 1 + (r−1)·segments + s
//     for ring r ∈ [1,rings], segment s ∈ [0,segments).
//   • Hub fan: (0, ring1[s], ring1[s+1]). Between rings r and r+1:
//     (a,b,c), (a,c,d) with a=ring_r[s], b=ring_{r+1}[s], c=ring_{r+1}[s+1],
//     d=ring_r[s+1]. Counter-clockwise from +Z.
//   • The outer ring is the only boundary loop.
//
// Complexity: O(rings·segments).

package meshgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
)

const (
	minRings    = 1
	minSegments = 3
)

// Disk builds a flat disk of the configured radius (optionally displaced by
// WithHeight). Ring r has radius r/rings·R.
func Disk(rings, segments int, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	m, err := ringMesh(methodDisk, rings, segments, func(r, s int) r3.Vec {
		rho := cfg.radius * float64(r) / float64(rings)
		theta := 2 * math.Pi * float64(s) / float64(segments)
		x, y := rho*math.Cos(theta), rho*math.Sin(theta)
		z := 0.0
		if cfg.height != nil {
			z = cfg.height(x, y)
		}

		return r3.Vec{X: x, Y: y, Z: z}
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Hemisphere builds the upper half of a sphere of the configured radius. The
// hub is the north pole and ring r lies at polar angle (π/2)·r/rings, so the
// boundary is the equator.
func Hemisphere(rings, segments int, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)

	return ringMesh(methodHemisphere, rings, segments, func(r, s int) r3.Vec {
		phi := 0.5 * math.Pi * float64(r) / float64(rings)
		theta := 2 * math.Pi * float64(s) / float64(segments)

		return r3.Scale(cfg.radius, r3.Vec{
			X: math.Sin(phi) * math.Cos(theta),
			Y: math.Sin(phi) * math.Sin(theta),
			Z: math.Cos(phi),
		})
	})
}

// RingVertex returns the id of segment s on ring r (r ≥ 1) for Disk and
// Hemisphere. Ring 0 is the hub, id 0.
func RingVertex(segments, r, s int) int {
	if r == 0 {
		return 0
	}

	return 1 + (r-1)*segments + s
}

// ringMesh emits the shared hub-and-rings topology; at(r, s) positions
// vertex s of ring r, with at(0, 0) the hub.
func ringMesh(method string, rings, segments int, at func(r, s int) r3.Vec) (*mesh.Mesh, error) {
	if rings < minRings || segments < minSegments {
		return nil, fmt.Errorf("%s: rings=%d segments=%d: %w", method, rings, segments, ErrTooFewSegments)
	}
	positions := make([]r3.Vec, 0, 1+rings*segments)
	positions = append(positions, at(0, 0))
	for r := 1; r <= rings; r++ {
		for s := 0; s < segments; s++ {
			positions = append(positions, at(r, s))
		}
	}

	v := func(r, s int) int { return RingVertex(segments, r, s%segments) }
	faces := make([][3]int, 0, segments*(2*rings-1))
	for s := 0; s < segments; s++ {
		faces = append(faces, [3]int{0, v(1, s), v(1, s+1)})
	}
	for r := 1; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a, b, c, d := v(r, s), v(r+1, s), v(r+1, s+1), v(r, s+1)
			faces = append(faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	m, err := mesh.New(positions, faces)
	if err != nil {
		return nil, meshgenErrorf(method, err)
	}

	return m, nil
}
