// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
)

// ValidateSquare returns ErrNilMatrix or ErrNonSquare when applicable.
func ValidateSquare(m *CSR) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}

// ValidateSymmetric checks |a_ij - a_ji| <= eps over the stored pattern of
// both triangles.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry (first violating pair).
//
// Complexity: O(nnz · maxRowNNZ).
func ValidateSymmetric(m *CSR, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return sparseErrorf(opSymmetric, err)
	}
	for i := 0; i < m.rows; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			if math.Abs(vals[k]-m.m.At(j, i)) > eps {
				return sparseErrorf(opSymmetric, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// IsSymmetric is the boolean form of ValidateSymmetric.
func IsSymmetric(m *CSR, eps float64) bool {
	return ValidateSymmetric(m, eps) == nil
}
