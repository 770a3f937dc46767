// SPDX-License-Identifier: MIT

package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/operator"
	"github.com/katalvlaran/conformal/sparse"
)

var (
	squarePositions = []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	squareFaces     = [][3]int{{0, 1, 2}, {0, 2, 3}}
)

func squareSystem(t *testing.T) (*operator.System, []mesh.BoundaryEdge) {
	t.Helper()
	boundary, err := mesh.ExtractBoundary(squareFaces)
	require.NoError(t, err)
	sys, err := operator.Assemble(squarePositions, squareFaces, boundary)
	require.NoError(t, err)

	return sys, boundary
}

// flatten packs (u, v) per vertex into the 2n layout.
func flatten(u, v []float64) []float64 {
	return append(append([]float64{}, u...), v...)
}

func quad(t *testing.T, m *sparse.CSR, x []float64) float64 {
	t.Helper()
	q, err := m.Dot(x, x)
	require.NoError(t, err)

	return q
}

func TestCotanLaplacian_SquareWeights(t *testing.T) {
	sys, _ := squareSystem(t)
	ld := sys.Laplacian

	for _, tc := range []struct {
		i, j int
		want float64
	}{
		{0, 1, 0.5}, {1, 2, 0.5}, {2, 3, 0.5}, {3, 0, 0.5},
		{0, 2, 0}, {0, 0, -1}, {2, 2, -1},
		{4, 5, 0.5}, {4, 6, 0}, {5, 5, -1},
		{0, 4, 0},
	} {
		v, err := ld.At(tc.i, tc.j)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, v, 1e-15, "Ld[%d][%d]", tc.i, tc.j)
	}
}

func TestOperators_Symmetric(t *testing.T) {
	sys, _ := squareSystem(t)
	assert.NoError(t, sparse.ValidateSymmetric(sys.Laplacian, 1e-14))
	assert.NoError(t, sparse.ValidateSymmetric(sys.Area, 1e-14))
	assert.NoError(t, sparse.ValidateSymmetric(sys.Energy, 1e-14))
}

func TestCotanLaplacian_RowsSumToZero(t *testing.T) {
	sys, _ := squareSystem(t)
	ones := []float64{1, 1, 1, 1, 0, 0, 0, 0}
	dst := make([]float64, 8)
	require.NoError(t, sys.Laplacian.MulVecTo(dst, ones))
	for _, v := range dst {
		assert.InDelta(t, 0, v, 1e-15)
	}
}

func TestEnergy_SignConventions(t *testing.T) {
	sys, _ := squareSystem(t)
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}

	identity := flatten(x, y)
	assert.InDelta(t, -1, quad(t, sys.Area, identity), 1e-14, "xᵀAx = −area")
	assert.InDelta(t, 2, -quad(t, sys.Laplacian, identity), 1e-14, "−xᵀLd x = 2·E_D")
	assert.InDelta(t, 0, quad(t, sys.Energy, identity), 1e-14, "identity is conformal")

	mirrored := flatten(x, []float64{0, 0, -1, -1})
	assert.InDelta(t, 4, quad(t, sys.Energy, mirrored), 1e-14, "mirror is penalised")
}

func TestBoundaryMass_Square(t *testing.T) {
	_, boundary := squareSystem(t)
	b, err := operator.MassMatrix(4, boundary)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1, 1}, b.Diagonal())
	assert.Equal(t, 8, b.NNZ())
}

func TestVectorArea_InteriorEdgesIgnored(t *testing.T) {
	at, err := operator.VectorArea(4, nil)
	require.NoError(t, err)
	assert.Empty(t, at)
}

func TestOperators_Errors(t *testing.T) {
	collinear := []r3.Vec{{X: 0}, {X: 1}, {X: 2}}
	_, err := operator.CotanLaplacian(collinear, [][3]int{{0, 1, 2}})
	assert.ErrorIs(t, err, operator.ErrDegenerateFace)
	assert.ErrorIs(t, err, conformal.ErrDegenerateSystem)

	_, err = operator.VectorArea(3, []mesh.BoundaryEdge{{From: 0, To: 3}})
	assert.ErrorIs(t, err, operator.ErrBoundaryOutOfRange)

	_, err = operator.BoundaryMass(3, []mesh.BoundaryEdge{{From: -1, To: 0}})
	assert.ErrorIs(t, err, operator.ErrBoundaryOutOfRange)

	_, err = operator.CotanLaplacian(squarePositions, [][3]int{{0, 1, 9}})
	assert.ErrorIs(t, err, mesh.ErrVertexOutOfRange)

	assert.Panics(t, func() { operator.WithDegenerateSine(1) })
}
