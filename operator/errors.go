// SPDX-License-Identifier: MIT

package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateFace is returned for a face whose corner angle has a
	// vanishing sine (zero or near-zero area).
	ErrDegenerateFace = errors.New("operator: degenerate face")

	// ErrBoundaryOutOfRange indicates a boundary edge endpoint outside [0,n).
	ErrBoundaryOutOfRange = errors.New("operator: boundary vertex out of range")
)

const (
	opLaplacian = "CotanLaplacian"
	opArea      = "VectorArea"
	opMass      = "BoundaryMass"
	opAssemble  = "Assemble"
)

func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
