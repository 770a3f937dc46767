// SPDX-License-Identifier: MIT

package asset

import (
	"math"

	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/meshgen"
)

// Built-in handles.
const (
	Sheet  Handle = "sheet"
	Disk   Handle = "disk"
	Dome   Handle = "dome"
	Saddle Handle = "saddle"
	Ripple Handle = "ripple"
)

// catalogRes is the grid resolution of the built-in meshes.
const catalogRes = 24

// DefaultCatalog returns procedural meshes with disk topology. Each
// reference pair lies on the boundary, on opposite sides.
func DefaultCatalog() map[Handle]Source {
	const n, rings, segs = catalogRes, catalogRes / 2, 2 * catalogRes
	corners := meshgen.GridCorners(n, n)
	rim := [2]int{meshgen.RingVertex(segs, rings, 0), meshgen.RingVertex(segs, rings, segs/2)}

	return map[Handle]Source{
		Sheet: {
			Title:    "Flat sheet",
			Load:     func() (*mesh.Mesh, error) { return meshgen.Grid(n, n) },
			RefVerts: [2]int{corners[0], corners[2]},
		},
		Disk: {
			Title:    "Flat disk",
			Load:     func() (*mesh.Mesh, error) { return meshgen.Disk(rings, segs) },
			RefVerts: rim,
		},
		Dome: {
			Title:    "Hemisphere",
			Load:     func() (*mesh.Mesh, error) { return meshgen.Hemisphere(rings, segs) },
			RefVerts: rim,
		},
		Saddle: {
			Title: "Saddle",
			Load: func() (*mesh.Mesh, error) {
				return meshgen.Grid(n, n, meshgen.WithHeight(func(x, y float64) float64 { return 0.5 * (x*x - y*y) }))
			},
			RefVerts: [2]int{corners[0], corners[2]},
		},
		Ripple: {
			Title: "Ripple",
			Load: func() (*mesh.Mesh, error) {
				return meshgen.Disk(rings, segs, meshgen.WithHeight(func(x, y float64) float64 {
					return 0.15 * math.Cos(3*math.Hypot(x, y)*math.Pi)
				}))
			},
			RefVerts: rim,
		},
	}
}
