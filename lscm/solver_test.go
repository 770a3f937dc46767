// SPDX-License-Identifier: MIT

package lscm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/lscm"
	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/meshgen"
)

var canonical = [2]r2.Vec{{X: -1}, {X: 1}}

// MustInit builds a solver for m pinned at pins or fails the test.
func MustInit(t *testing.T, m *mesh.Mesh, pins [2]int) *lscm.Solver {
	t.Helper()
	boundary, err := m.Boundary()
	require.NoError(t, err)
	s := lscm.NewSolver()
	require.NoError(t, s.Init(m.Positions, m.Faces, boundary, pins))

	return s
}

// MustSolve runs Solve into a fresh buffer.
func MustSolve(t *testing.T, s *lscm.Solver, n int, values [2]r2.Vec) []r2.Vec {
	t.Helper()
	out := make([]r2.Vec, n)
	require.NoError(t, s.Solve(values, out))

	return out
}

// similarity returns the planar similarity taking (p0,p1) to (q0,q1).
func similarity(p0, p1, q0, q1 r2.Vec) func(r2.Vec) r2.Vec {
	z0, z1 := complex(p0.X, p0.Y), complex(p1.X, p1.Y)
	w0, w1 := complex(q0.X, q0.Y), complex(q1.X, q1.Y)
	a := (w1 - w0) / (z1 - z0)
	b := w0 - a*z0

	return func(p r2.Vec) r2.Vec {
		w := a*complex(p.X, p.Y) + b
		return r2.Vec{X: real(w), Y: imag(w)}
	}
}

func xy(p r3.Vec) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func TestSolve_UnitSquare(t *testing.T) {
	m, err := meshgen.Grid(1, 1)
	require.NoError(t, err)
	s := MustInit(t, m, [2]int{0, 3})
	assert.Equal(t, lscm.StatusInitialized, s.Status())
	assert.Equal(t, [2]int{0, 3}, s.Pins())

	uv := MustSolve(t, s, 4, canonical)
	want := []r2.Vec{{X: -1}, {Y: -1}, {Y: 1}, {X: 1}}
	for i := range want {
		assert.InDelta(t, want[i].X, uv[i].X, 1e-12, "u%d", i)
		assert.InDelta(t, want[i].Y, uv[i].Y, 1e-12, "v%d", i)
	}
}

func TestSolve_FlatMeshIsSimilarity(t *testing.T) {
	m, err := meshgen.Grid(6, 5, meshgen.WithJitter(0.2), meshgen.WithSeed(3), meshgen.WithSize(3, 2))
	require.NoError(t, err)
	c := meshgen.GridCorners(6, 5)
	pins := [2]int{c[0], c[2]}
	s := MustInit(t, m, pins)

	values := [2]r2.Vec{{X: 0.25, Y: -2}, {X: 4, Y: 1}}
	uv := MustSolve(t, s, m.VertexCount(), values)

	f := similarity(xy(m.Positions[pins[0]]), xy(m.Positions[pins[1]]), values[0], values[1])
	for i, p := range m.Positions {
		want := f(xy(p))
		assert.InDelta(t, want.X, uv[i].X, 1e-9, "u%d", i)
		assert.InDelta(t, want.Y, uv[i].Y, 1e-9, "v%d", i)
	}

	e, err := s.Energy(uv)
	require.NoError(t, err)
	assert.InDelta(t, 0, e, 1e-9)
}

func TestSolve_PinsExact(t *testing.T) {
	m, err := meshgen.Hemisphere(4, 12)
	require.NoError(t, err)
	pins := [2]int{meshgen.RingVertex(12, 4, 0), meshgen.RingVertex(12, 4, 6)}
	s := MustInit(t, m, pins)
	uv := MustSolve(t, s, m.VertexCount(), canonical)

	assert.Equal(t, canonical[0], uv[pins[0]])
	assert.Equal(t, canonical[1], uv[pins[1]])
	for i, p := range uv {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "vertex %d", i)
	}
}

func TestSolve_MinimisesEnergy(t *testing.T) {
	m, err := meshgen.Hemisphere(3, 10)
	require.NoError(t, err)
	pins := [2]int{meshgen.RingVertex(10, 3, 0), meshgen.RingVertex(10, 3, 5)}
	s := MustInit(t, m, pins)
	uv := MustSolve(t, s, m.VertexCount(), canonical)

	best, err := s.Energy(uv)
	require.NoError(t, err)
	assert.Positive(t, best)

	moved := append([]r2.Vec(nil), uv...)
	moved[0].X += 0.05
	worse, err := s.Energy(moved)
	require.NoError(t, err)
	assert.Greater(t, worse, best)
}

func TestSolve_InvariantUnderSimilarity(t *testing.T) {
	m, err := meshgen.Hemisphere(3, 16)
	require.NoError(t, err)
	pins := [2]int{meshgen.RingVertex(16, 3, 0), meshgen.RingVertex(16, 3, 8)}
	base := MustSolve(t, MustInit(t, m, pins), m.VertexCount(), canonical)

	moved, err := meshgen.Transform(m, func(p r3.Vec) r3.Vec {
		p = meshgen.Rotated(r3.Vec{X: 1, Y: 2, Z: 3}, 0.7)(p)
		return r3.Add(r3.Scale(5, p), r3.Vec{X: 1, Y: -2, Z: 9})
	})
	require.NoError(t, err)
	other := MustSolve(t, MustInit(t, moved, pins), moved.VertexCount(), canonical)

	for i := range base {
		assert.InDelta(t, base[i].X, other[i].X, 1e-9, "u%d", i)
		assert.InDelta(t, base[i].Y, other[i].Y, 1e-9, "v%d", i)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	m, err := meshgen.Disk(4, 9, meshgen.WithHeight(func(x, y float64) float64 { return x * y }))
	require.NoError(t, err)
	pins := [2]int{meshgen.RingVertex(9, 4, 0), meshgen.RingVertex(9, 4, 4)}
	a := MustSolve(t, MustInit(t, m, pins), m.VertexCount(), canonical)
	b := MustSolve(t, MustInit(t, m, pins), m.VertexCount(), canonical)
	assert.Equal(t, a, b)
}

func TestReinit_MovesPins(t *testing.T) {
	m, err := meshgen.Grid(3, 3)
	require.NoError(t, err)
	c := meshgen.GridCorners(3, 3)
	s := MustInit(t, m, [2]int{c[0], c[2]})

	require.NoError(t, s.Reinit([2]int{c[1], c[3]}))
	assert.Equal(t, [2]int{c[1], c[3]}, s.Pins())
	uv := MustSolve(t, s, m.VertexCount(), canonical)
	assert.Equal(t, canonical[0], uv[c[1]])
	assert.Equal(t, canonical[1], uv[c[3]])
	// corners (−,−) and (+,+) lie on the perpendicular bisector
	assert.InDelta(t, 0, uv[c[0]].X, 1e-9)
	assert.InDelta(t, 0, uv[c[2]].X, 1e-9)

	err = s.Reinit([2]int{c[0], c[0]})
	assert.ErrorIs(t, err, lscm.ErrCoincidentPins)
	assert.Equal(t, lscm.StatusDefault, s.Status())
	assert.ErrorIs(t, s.Solve(canonical, uv), conformal.ErrNotInitialized)
}

func TestInit_ClosedMesh(t *testing.T) {
	m, err := meshgen.Platonic(meshgen.Octahedron)
	require.NoError(t, err)
	s := MustInit(t, m, [2]int{0, 1})
	uv := MustSolve(t, s, m.VertexCount(), canonical)
	assert.Equal(t, canonical[0], uv[0])
	assert.Equal(t, canonical[1], uv[1])
}

func TestInit_Errors(t *testing.T) {
	grid, err := meshgen.Grid(2, 2)
	require.NoError(t, err)
	boundary, err := grid.Boundary()
	require.NoError(t, err)

	s := lscm.NewSolver()
	err = s.Init(grid.Positions, grid.Faces, boundary, [2]int{4, 4})
	assert.ErrorIs(t, err, lscm.ErrCoincidentPins)
	assert.ErrorIs(t, err, conformal.ErrDegenerateSystem)
	assert.Equal(t, lscm.StatusDefault, s.Status())

	err = s.Init(grid.Positions, grid.Faces, boundary, [2]int{0, 9})
	assert.ErrorIs(t, err, lscm.ErrPinOutOfRange)
	assert.ErrorIs(t, err, conformal.ErrDegenerateSystem)

	// an extra vertex no face references
	extra := append(append([]r3.Vec(nil), grid.Positions...), r3.Vec{Z: 1})
	err = s.Init(extra, grid.Faces, boundary, [2]int{0, 8})
	assert.ErrorIs(t, err, lscm.ErrDisconnected)

	// two separate triangles
	pos := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 5}, {X: 6}, {X: 5, Y: 1}}
	faces := [][3]int{{0, 1, 2}, {3, 4, 5}}
	split, err := mesh.ExtractBoundary(faces)
	require.NoError(t, err)
	err = s.Init(pos, faces, split, [2]int{0, 1})
	assert.ErrorIs(t, err, lscm.ErrDisconnected)
	assert.ErrorIs(t, err, conformal.ErrDegenerateSystem)

	// collinear face
	flat := []r3.Vec{{}, {X: 1}, {X: 2}}
	tri := [][3]int{{0, 1, 2}}
	line, err := mesh.ExtractBoundary(tri)
	require.NoError(t, err)
	err = s.Init(flat, tri, line, [2]int{0, 2})
	assert.ErrorIs(t, err, conformal.ErrDegenerateSystem)
}

func TestSolve_NotReady(t *testing.T) {
	var s lscm.Solver
	assert.ErrorIs(t, s.Solve(canonical, make([]r2.Vec, 4)), conformal.ErrNotInitialized)
	assert.ErrorIs(t, s.Reinit([2]int{0, 1}), conformal.ErrNotInitialized)
	_, err := s.Energy(nil)
	assert.ErrorIs(t, err, conformal.ErrNotInitialized)

	m, err := meshgen.Grid(1, 1)
	require.NoError(t, err)
	ready := MustInit(t, m, [2]int{0, 3})
	short := []r2.Vec{{X: 7}}
	assert.ErrorIs(t, ready.Solve(canonical, short), lscm.ErrBufferSize)
	assert.Equal(t, r2.Vec{X: 7}, short[0])
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Default", lscm.StatusDefault.String())
	assert.Equal(t, "Initialized", lscm.StatusInitialized.String())
}
