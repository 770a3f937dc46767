// SPDX-License-Identifier: MIT

package mesh

// ConnectedComponents partitions the n vertices into groups connected through
// shared faces. A vertex referenced by no face forms its own component.
// Components are listed in order of their smallest vertex id and each
// component lists vertices in BFS order from that id.
//
// Time:   O(n + F).
// Memory: O(n + F).
func ConnectedComponents(n int, faces [][3]int) [][]int {
	adj := VertexAdjacency(n, faces)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// VertexAdjacency lists, for each vertex, its neighbours across face edges
// in first-seen order without duplicates.
func VertexAdjacency(n int, faces [][3]int) [][]int {
	adj := make([][]int, n)
	link := func(a, b int) {
		for _, x := range adj[a] {
			if x == b {
				return
			}
		}
		adj[a] = append(adj[a], b)
	}
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			link(a, b)
			link(b, a)
		}
	}

	return adj
}

// UnreferencedVertices returns ids in [0,n) used by no face, ascending.
func UnreferencedVertices(n int, faces [][3]int) []int {
	used := make([]bool, n)
	for _, f := range faces {
		used[f[0]], used[f[1]], used[f[2]] = true, true, true
	}
	var out []int
	for v, ok := range used {
		if !ok {
			out = append(out, v)
		}
	}

	return out
}
