// SPDX-License-Identifier: MIT

// Package conformal is a conformal mesh-parameterization engine: given a
// triangulated surface with one open boundary it computes a 2D coordinate
// for every vertex that minimises angular distortion.
//
// Two formulations are provided:
//
//   - lscm: least-squares conformal maps. Two vertices are pinned and the
//     remaining coordinates come from one sparse SPD solve.
//   - scm: spectral conformal maps. No pins; the layout is the first
//     non-trivial eigenvector of a generalised eigenproblem.
//
// Both are normalised afterwards (package normalize) so that a per-mesh
// reference pair lands on (-1,0) and (1,0).
//
// Layout:
//
//	mesh/      — mesh snapshot, boundary extraction, connectivity
//	sparse/    — triplet builder and CSR storage
//	operator/  — cotangent Laplacian, vector area and boundary mass forms
//	linalg/    — banded Cholesky and shift-invert eigen solver (gonum)
//	lscm/      — least-squares conformal solver
//	scm/       — spectral conformal solver
//	normalize/ — two-point similarity normalisation
//	texcoord/  — method selection, status, cached solvers
//	pipeline/  — background task queue with barriers
//	scene/     — load, extract and solve stages for mesh and method changes
//	asset/     — mesh registry and cache
//	meshgen/   — procedural meshes
//
// Quick example:
//
//	m, _ := meshgen.Grid(8, 8)
//	boundary, _ := m.Boundary()
//	s := lscm.NewSolver()
//	if err := s.Init(m.Positions, m.Faces, boundary, [2]int{0, 80}); err != nil {
//		return err
//	}
//	uv := make([]r2.Vec, m.VertexCount())
//	err := s.Solve([2]r2.Vec{{X: -1}, {X: 1}}, uv)
//
// Logging is silent by default; see SetLogger.
package conformal
