// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/katalvlaran/conformal"
)

// EdgeKey is the order-independent key of an undirected edge (Lo < Hi).
type EdgeKey struct {
	Lo, Hi int
}

// MakeEdgeKey canonicalises the pair (a,b).
func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{Lo: a, Hi: b}
}

// Edge records the orientation an edge had in the first face that used it,
// and the faces incident to it.
type Edge struct {
	From, To int
	Faces    []int
}

// BoundaryEdge is a directed boundary edge, oriented like its only face.
type BoundaryEdge struct {
	From, To int
}

// EdgeIndex maps canonical keys to edge ids assigned in first-seen order.
type EdgeIndex struct {
	ids   map[EdgeKey]int
	Edges []Edge
}

// BuildEdgeIndex walks faces in order, edges (a,b),(b,c),(c,a) of each.
//
// Errors: an error wrapping conformal.ErrTopology and ErrNonManifoldEdge as
// soon as any edge collects a third face.
//
// Complexity: O(F) expected.
func BuildEdgeIndex(faces [][3]int) (*EdgeIndex, error) {
	idx := &EdgeIndex{
		ids:   make(map[EdgeKey]int, 3*len(faces)/2+1),
		Edges: make([]Edge, 0, 3*len(faces)/2+1),
	}
	for fi, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			key := MakeEdgeKey(a, b)
			id, ok := idx.ids[key]
			if !ok {
				id = len(idx.Edges)
				idx.ids[key] = id
				idx.Edges = append(idx.Edges, Edge{From: a, To: b})
			}
			e := &idx.Edges[id]
			if len(e.Faces) == 2 {
				return nil, fmt.Errorf("%s: edge (%d,%d) at face %d: %w: %w",
					opBoundary, key.Lo, key.Hi, fi, conformal.ErrTopology, ErrNonManifoldEdge)
			}
			e.Faces = append(e.Faces, fi)
		}
	}

	return idx, nil
}

// Lookup returns the edge id of (a,b) in either orientation.
func (x *EdgeIndex) Lookup(a, b int) (int, bool) {
	id, ok := x.ids[MakeEdgeKey(a, b)]

	return id, ok
}

// Len returns the number of distinct edges.
func (x *EdgeIndex) Len() int { return len(x.Edges) }

// Boundary returns edges with exactly one incident face, in edge-id order.
func (x *EdgeIndex) Boundary() []BoundaryEdge {
	out := make([]BoundaryEdge, 0)
	for _, e := range x.Edges {
		if len(e.Faces) == 1 {
			out = append(out, BoundaryEdge{From: e.From, To: e.To})
		}
	}

	return out
}

// ExtractBoundary returns the directed boundary edges of a triangle list.
// A closed mesh yields an empty, non-nil slice. Several loops are allowed;
// the output is not grouped per loop (see BoundaryLoops).
func ExtractBoundary(faces [][3]int) ([]BoundaryEdge, error) {
	idx, err := BuildEdgeIndex(faces)
	if err != nil {
		return nil, err
	}

	return idx.Boundary(), nil
}

// BoundaryLoops stitches directed boundary edges into closed vertex loops.
// Each loop starts at the From vertex of its lowest-indexed edge in the input
// and follows To links. A vertex with several outgoing boundary edges (a
// pinch vertex) is followed in input order.
//
// Errors: ErrOpenLoop if some edge cannot be closed.
func BoundaryLoops(edges []BoundaryEdge) ([][]int, error) {
	next := make(map[int][]int, len(edges))
	for i, e := range edges {
		next[e.From] = append(next[e.From], i)
	}
	used := make([]bool, len(edges))
	var loops [][]int
	for start := range edges {
		if used[start] {
			continue
		}
		loop := []int{edges[start].From}
		used[start] = true
		cur := edges[start].To
		for cur != edges[start].From {
			loop = append(loop, cur)
			found := false
			for _, ei := range next[cur] {
				if !used[ei] {
					used[ei] = true
					cur = edges[ei].To
					found = true
					break
				}
			}
			if !found {
				return nil, meshErrorf(opLoops, fmt.Errorf("stuck at vertex %d: %w", cur, ErrOpenLoop))
			}
		}
		loops = append(loops, loop)
	}

	return loops, nil
}

// BoundaryVertices returns the distinct endpoints of edges in first-seen order.
func BoundaryVertices(edges []BoundaryEdge) []int {
	seen := make(map[int]struct{}, len(edges))
	var out []int
	for _, e := range edges {
		for _, v := range [2]int{e.From, e.To} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}

	return out
}
