// SPDX-License-Identifier: MIT

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/mesh"
)

// unit square split along the (0,2) diagonal, CCW seen from +Z
var squareFaces = [][3]int{{0, 1, 2}, {0, 2, 3}}

var squarePositions = []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

var tetraFaces = [][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}

func TestExtractBoundary_Square(t *testing.T) {
	edges, err := mesh.ExtractBoundary(squareFaces)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	for _, e := range edges {
		assert.NotEqual(t, mesh.MakeEdgeKey(0, 2), mesh.MakeEdgeKey(e.From, e.To), "diagonal is interior")
	}
	// orientation follows the face winding
	assert.Equal(t, []mesh.BoundaryEdge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, edges)
}

func TestExtractBoundary_ClosedTetrahedron(t *testing.T) {
	edges, err := mesh.ExtractBoundary(tetraFaces)
	require.NoError(t, err)
	assert.NotNil(t, edges)
	assert.Empty(t, edges)
}

func TestExtractBoundary_NonManifold(t *testing.T) {
	// three fins around edge (0,1)
	faces := [][3]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}
	edges, err := mesh.ExtractBoundary(faces)
	require.Error(t, err)
	assert.Nil(t, edges)
	assert.ErrorIs(t, err, conformal.ErrTopology)
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdge)
}

func TestExtractBoundary_ReversedWindingReversesEdges(t *testing.T) {
	flipped := [][3]int{{0, 2, 1}, {0, 3, 2}}
	edges, err := mesh.ExtractBoundary(flipped)
	require.NoError(t, err)
	for _, e := range edges {
		// every CCW edge (i -> i+1 mod 4) must now point the other way
		assert.Equal(t, (e.To+1)%4, e.From, "edge %v", e)
	}
}

func TestExtractBoundary_TwoLoops(t *testing.T) {
	faces := append([][3]int{}, squareFaces...)
	faces = append(faces, [3]int{4, 5, 6}, [3]int{4, 6, 7})
	edges, err := mesh.ExtractBoundary(faces)
	require.NoError(t, err)
	assert.Len(t, edges, 8)

	loops, err := mesh.BoundaryLoops(edges)
	require.NoError(t, err)
	require.Len(t, loops, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, loops[0])
	assert.Equal(t, []int{4, 5, 6, 7}, loops[1])
}

func TestBoundaryLoops_Open(t *testing.T) {
	_, err := mesh.BoundaryLoops([]mesh.BoundaryEdge{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, mesh.ErrOpenLoop)
}

func TestBoundaryVertices(t *testing.T) {
	got := mesh.BoundaryVertices([]mesh.BoundaryEdge{{0, 1}, {1, 2}, {2, 0}})
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestEdgeIndex_Lookup(t *testing.T) {
	idx, err := mesh.BuildEdgeIndex(squareFaces)
	require.NoError(t, err)
	assert.Equal(t, 5, idx.Len())

	id, ok := idx.Lookup(2, 0)
	require.True(t, ok)
	assert.Len(t, idx.Edges[id].Faces, 2)

	_, ok = idx.Lookup(1, 3)
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	_, err := mesh.New(nil, squareFaces)
	assert.ErrorIs(t, err, mesh.ErrEmptyMesh)

	_, err = mesh.New(squarePositions, [][3]int{{0, 1, 4}})
	assert.ErrorIs(t, err, mesh.ErrVertexOutOfRange)

	_, err = mesh.New(squarePositions, [][3]int{{0, 1, 1}})
	assert.ErrorIs(t, err, mesh.ErrRepeatedVertex)

	m, err := mesh.New(squarePositions, squareFaces)
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
}
