// SPDX-License-Identifier: MIT

package linalg

import (
	"sort"

	"github.com/katalvlaran/conformal/sparse"
)

// ReverseCuthillMcKee returns a bandwidth-reducing permutation of a square
// matrix's symmetric sparsity pattern: perm[new] = old.
//
// Implementation:
//   - Stage 1: for each connected component, start from the unvisited vertex
//     of minimum degree and walk to a pseudo-peripheral vertex.
//   - Stage 2: BFS from it, enqueuing neighbours by ascending (degree, id).
//   - Stage 3: reverse the concatenated order.
//
// Complexity: O(nnz · log d) time, O(n) extra space.
func ReverseCuthillMcKee(m *sparse.CSR) []int {
	n, _ := m.Dims()
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		cols, _ := m.Row(i)
		for _, j := range cols {
			if j != i {
				adj[i] = append(adj[i], j)
			}
		}
	}
	deg := make([]int, n)
	for i := range adj {
		deg[i] = len(adj[i])
	}
	for i := range adj {
		sort.Slice(adj[i], func(a, b int) bool {
			x, y := adj[i][a], adj[i][b]
			if deg[x] != deg[y] {
				return deg[x] < deg[y]
			}

			return x < y
		})
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		start := -1
		for v := 0; v < n; v++ {
			if !visited[v] && (start < 0 || deg[v] < deg[start]) {
				start = v
			}
		}
		start = peripheral(adj, deg, start)

		visited[start] = true
		head := len(order)
		order = append(order, start)
		for ; head < len(order); head++ {
			for _, w := range adj[order[head]] {
				if !visited[w] {
					visited[w] = true
					order = append(order, w)
				}
			}
		}
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order
}

// peripheral iterates BFS level structures from start, moving to the
// minimum-degree vertex of the last level while the eccentricity grows.
func peripheral(adj [][]int, deg []int, start int) int {
	dist := make(map[int]int)
	ecc := -1
	for it := 0; it < 8; it++ {
		clear(dist)
		dist[start] = 0
		queue := []int{start}
		far := 0
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, w := range adj[u] {
				if _, ok := dist[w]; !ok {
					dist[w] = dist[u] + 1
					far = max(far, dist[w])
					queue = append(queue, w)
				}
			}
		}
		if far <= ecc {
			break
		}
		ecc = far
		best := -1
		for _, v := range queue {
			if dist[v] == far && (best < 0 || deg[v] < deg[best] || (deg[v] == deg[best] && v < best)) {
				best = v
			}
		}
		if best == start {
			break
		}
		start = best
	}

	return start
}

// Bandwidth returns max |inv[i] − inv[j]| over stored entries, where inv is
// the inverse of perm. A nil perm means the identity.
func Bandwidth(m *sparse.CSR, perm []int) int {
	n, _ := m.Dims()
	inv := inverse(perm, n)
	k := 0
	for i := 0; i < n; i++ {
		cols, _ := m.Row(i)
		for _, j := range cols {
			d := inv[i] - inv[j]
			if d < 0 {
				d = -d
			}
			k = max(k, d)
		}
	}

	return k
}

func inverse(perm []int, n int) []int {
	inv := make([]int, n)
	for i := range inv {
		inv[i] = i
	}
	for newIdx, old := range perm {
		inv[old] = newIdx
	}

	return inv
}
