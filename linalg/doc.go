// SPDX-License-Identifier: MIT

// Package linalg is the narrow numeric interface the solvers depend on:
//
//   - FactorizeSPD: sparse symmetric positive definite factorisation
//     (reverse Cuthill–McKee ordering + gonum banded Cholesky) and solves.
//   - SolveShiftInvert: a few generalised eigenpairs of a·x = λ·b·x nearest
//     a shift, by shift-invert block subspace iteration with Rayleigh–Ritz
//     projection onto gonum's dense symmetric eigensolver.
//
// Matrices come in as *sparse.CSR; dense work is delegated to
// gonum.org/v1/gonum/mat.
//
// Determinism: orderings break ties by vertex id, the eigen solver starts from
// a seeded pseudo-random block, and all loops run in fixed order.
package linalg
