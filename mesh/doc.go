// SPDX-License-Identifier: MIT

// Package mesh holds the immutable triangle-mesh snapshot consumed by the
// solvers, together with the topology queries they need:
//
//   - ExtractBoundary: directed boundary edges (edges with one incident face),
//     oriented like the winding of that face.
//   - BoundaryLoops: stitches boundary edges into closed loops.
//   - ConnectedComponents: BFS over shared-vertex connectivity.
//   - Bounds / VertexNormals: simple geometric summaries.
//
// Orientation of boundary edges is load-bearing: the vector area form in
// package operator uses each edge as a directed contribution, and reversing
// it mirrors the resulting parameterization.
package mesh
