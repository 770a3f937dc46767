// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Every message is prefixed with "sparse: ". Call sites wrap with the
// operation tag via sparseErrorf; callers match with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when rows or cols is not positive.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrAsymmetry signals |a_ij - a_ji| > eps for some pair.
	ErrAsymmetry = errors.New("sparse: matrix is not symmetric within eps")

	// ErrNaNInf signals a non-finite value under the finite-value policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *CSR.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// Operation tags.
const (
	opFromTriplets = "FromTriplets"
	opAt           = "At"
	opMulVec       = "MulVecTo"
	opAdd          = "Add"
	opInduced      = "Induced"
	opSymmetric    = "ValidateSymmetric"
	opRepeat       = "RepeatDiagonal"
)

func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
