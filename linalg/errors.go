// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a 0×0 system.
	ErrEmpty = errors.New("linalg: empty system")

	// ErrNotPositiveDefinite is returned when Cholesky breaks down.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrIllConditioned is returned when the condition estimate exceeds the limit.
	ErrIllConditioned = errors.New("linalg: matrix is ill-conditioned")

	// ErrDimensionMismatch indicates vectors or matrices of the wrong size.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrMassDeficient indicates that b has too small a rank for the request,
	// or that a deflation vector has zero b-norm.
	ErrMassDeficient = errors.New("linalg: mass matrix rank too small")

	// ErrEigenNotConverged is returned when subspace iteration hits the
	// iteration limit, or the projected problem cannot be solved.
	ErrEigenNotConverged = errors.New("linalg: eigen solver did not converge")
)

const (
	opFactorize = "FactorizeSPD"
	opSolve     = "Cholesky.SolveTo"
	opEigen     = "SolveShiftInvert"
)

func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
