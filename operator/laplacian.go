// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/sparse"
)

// CotanLaplacian returns Ld for the 2n×2n system.
//
// For the corner at k of a face, opposite the edge (i,j), with c = cot(θk)/2:
//
//	Ld[i][j] += c   Ld[j][i] += c   Ld[i][i] -= c   Ld[j][j] -= c
//
// The n×n block is then repeated at offset n for the v coordinates.
// Rows sum to zero, so constant vectors in either block lie in the kernel.
//
// Errors:
//   - mesh validation errors for malformed faces.
//   - ErrDegenerateFace (also conformal.ErrDegenerateSystem) when some
//     corner has |sin θ| below the configured threshold.
func CotanLaplacian(positions []r3.Vec, faces [][3]int, opts ...Option) (sparse.Triplets, error) {
	o := gatherOptions(opts...)
	n := len(positions)
	if err := mesh.ValidateFaces(n, faces); err != nil {
		return nil, operatorErrorf(opLaplacian, err)
	}
	block := make(sparse.Triplets, 0, 12*len(faces))
	for fi, f := range faces {
		for k := 0; k < 3; k++ {
			vk, vi, vj := f[k], f[(k+1)%3], f[(k+2)%3]
			cot, ok := cotangent(positions[vk], positions[vi], positions[vj], o.minSine)
			if !ok {
				return nil, fmt.Errorf("%s: face %d: %w: %w", opLaplacian, fi, conformal.ErrDegenerateSystem, ErrDegenerateFace)
			}
			c := 0.5 * cot
			block.Add(vi, vj, c)
			block.Add(vj, vi, c)
			block.Add(vi, vi, -c)
			block.Add(vj, vj, -c)
		}
	}

	out, err := sparse.RepeatDiagonal(block, n, n, 2)
	if err != nil {
		return nil, operatorErrorf(opLaplacian, err)
	}

	return out, nil
}

// cotangent returns cot of the angle at apex between the rays to a and b.
func cotangent(apex, a, b r3.Vec, minSine float64) (float64, bool) {
	e1, e2 := r3.Sub(a, apex), r3.Sub(b, apex)
	cross := r3.Norm(r3.Cross(e1, e2))
	scale := r3.Norm(e1) * r3.Norm(e2)
	if scale == 0 || cross <= minSine*scale {
		return 0, false
	}

	return r3.Dot(e1, e2) / cross, true
}
