// SPDX-License-Identifier: MIT

package operator

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/sparse"
)

// System bundles the materialised operators of one mesh snapshot.
type System struct {
	// N is the vertex count; every matrix is 2N×2N.
	N int

	Laplacian *sparse.CSR // Ld, negative semidefinite
	Area      *sparse.CSR // A, xᵀAx = −Area(x)
	Energy    *sparse.CSR // Lc = 2A − Ld, positive semidefinite
}

// Assemble builds Ld, A and Lc = 2A − Ld for the given snapshot.
func Assemble(positions []r3.Vec, faces [][3]int, boundary []mesh.BoundaryEdge, opts ...Option) (*System, error) {
	n := len(positions)
	lt, err := CotanLaplacian(positions, faces, opts...)
	if err != nil {
		return nil, err
	}
	at, err := VectorArea(n, boundary)
	if err != nil {
		return nil, err
	}
	ld, err := sparse.FromTriplets(2*n, 2*n, lt)
	if err != nil {
		return nil, operatorErrorf(opAssemble, err)
	}
	// empty boundary still yields a valid all-zero 2n×2n matrix
	a, err := sparse.FromTriplets(2*n, 2*n, at)
	if err != nil {
		return nil, operatorErrorf(opAssemble, err)
	}
	lc, err := sparse.Add(a, ld, 2, -1)
	if err != nil {
		return nil, operatorErrorf(opAssemble, err)
	}

	return &System{N: n, Laplacian: ld, Area: a, Energy: lc}, nil
}

// MassMatrix materialises BoundaryMass.
func MassMatrix(n int, boundary []mesh.BoundaryEdge) (*sparse.CSR, error) {
	bt, err := BoundaryMass(n, boundary)
	if err != nil {
		return nil, err
	}
	b, err := sparse.FromTriplets(2*n, 2*n, bt)
	if err != nil {
		return nil, operatorErrorf(opMass, err)
	}

	return b, nil
}
