// SPDX-License-Identifier: MIT

package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
)

func TestConnectedComponents(t *testing.T) {
	for _, tc := range []struct {
		name  string
		n     int
		faces [][3]int
		sizes []int
	}{
		{"square", 4, squareFaces, []int{4}},
		{"two squares", 8, [][3]int{{0, 1, 2}, {0, 2, 3}, {4, 5, 6}, {4, 6, 7}}, []int{4, 4}},
		{"isolated vertex", 5, squareFaces, []int{4, 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			comps := mesh.ConnectedComponents(tc.n, tc.faces)
			require.Len(t, comps, len(tc.sizes))
			for i, c := range comps {
				assert.Len(t, c, tc.sizes[i])
			}
		})
	}
}

func TestUnreferencedVertices(t *testing.T) {
	assert.Equal(t, []int{4, 5}, mesh.UnreferencedVertices(6, squareFaces))
	assert.Empty(t, mesh.UnreferencedVertices(4, squareFaces))
}

func TestVertexAdjacency(t *testing.T) {
	adj := mesh.VertexAdjacency(4, squareFaces)
	assert.ElementsMatch(t, []int{1, 2, 3}, adj[0])
	assert.ElementsMatch(t, []int{0, 2}, adj[1])
}

func TestBoundsAndNormals(t *testing.T) {
	m, err := mesh.New(squarePositions, squareFaces)
	require.NoError(t, err)

	c, r := m.Bounds()
	assert.InDelta(t, 0.5, c.X, 1e-12)
	assert.InDelta(t, 0.5, c.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, r, 1e-12)

	for _, n := range m.VertexNormals() {
		assert.InDelta(t, 0, r3.Norm(r3.Sub(n, r3.Vec{Z: 1})), 1e-12)
	}
}
