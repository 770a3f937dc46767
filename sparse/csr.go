// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"

	bsparse "github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CSR is an immutable compressed sparse row matrix backed by
// github.com/james-bowman/sparse. Column indices are strictly increasing
// within a row.
type CSR struct {
	rows, cols int
	m          *bsparse.CSR
}

// FromTriplets materialises a rows×cols matrix, summing duplicates.
//
// Implementation:
//   - Stage 1: validate shape, indices and (by default) finiteness.
//   - Stage 2: counting sort by row, then stable sort by column per row.
//   - Stage 3: merge equal columns by summation in input order and hand the
//     canonical arrays to bsparse.NewCSR.
//
// Errors: ErrBadShape, ErrOutOfRange, ErrNaNInf.
//
// Determinism: duplicates are added in input order, so equal triplet lists
// give bit-identical matrices.
//
// Complexity: O(nnz log(maxRowNNZ)) time, O(nnz + rows) space.
func FromTriplets(rows, cols int, ts Triplets, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opFromTriplets, ErrBadShape)
	}
	counts := make([]int, rows+1)
	for _, e := range ts {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf(opFromTriplets, fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrOutOfRange))
		}
		if o.validateNaNInf && (math.IsNaN(e.Value) || math.IsInf(e.Value, 0)) {
			return nil, sparseErrorf(opFromTriplets, fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrNaNInf))
		}
		counts[e.Row+1]++
	}
	for i := 0; i < rows; i++ {
		counts[i+1] += counts[i]
	}

	// bucket by row, preserving input order
	order := make([]int, len(ts))
	next := append([]int(nil), counts[:rows]...)
	for k, e := range ts {
		order[next[e.Row]] = k
		next[e.Row]++
	}

	indptr := make([]int, rows+1)
	indices := make([]int, 0, len(ts))
	data := make([]float64, 0, len(ts))
	for i := 0; i < rows; i++ {
		seg := order[counts[i]:counts[i+1]]
		sort.SliceStable(seg, func(a, b int) bool { return ts[seg[a]].Col < ts[seg[b]].Col })
		for p := 0; p < len(seg); {
			col := ts[seg[p]].Col
			sum := 0.0
			for ; p < len(seg) && ts[seg[p]].Col == col; p++ {
				sum += ts[seg[p]].Value
			}
			if o.dropZeros && math.Abs(sum) <= o.eps {
				continue
			}
			indices = append(indices, col)
			data = append(data, sum)
		}
		indptr[i+1] = len(indices)
	}

	return &CSR{rows: rows, cols: cols, m: bsparse.NewCSR(rows, cols, indptr, indices, data)}, nil
}

// Matrix exposes m as a gonum mat.Matrix. It shares storage with m and
// must not be modified.
func (m *CSR) Matrix() mat.Matrix { return m.m }

// Dims returns (rows, cols).
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return m.m.NNZ() }

// At returns a[i][j] (0 when not stored).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, sparseErrorf(opAt, ErrOutOfRange)
	}

	return m.m.At(i, j), nil
}

// Row returns views of the column indices and values of row i. The slices
// alias internal storage and must not be modified.
func (m *CSR) Row(i int) ([]int, []float64) {
	raw := m.m.RawMatrix()
	lo, hi := raw.Indptr[i], raw.Indptr[i+1]

	return raw.Ind[lo:hi], raw.Data[lo:hi]
}

// MulVecTo computes dst = m·x.
//
// Errors: ErrDimensionMismatch if len(x) != cols or len(dst) != rows.
func (m *CSR) MulVecTo(dst, x []float64) error {
	if len(x) != m.cols || len(dst) != m.rows {
		return sparseErrorf(opMulVec, ErrDimensionMismatch)
	}
	// bsparse accumulates into dst
	clear(dst)
	m.m.MulVecTo(dst, false, x)

	return nil
}

// Dot returns xᵀ·m·y. Lengths must match the shape.
func (m *CSR) Dot(x, y []float64) (float64, error) {
	if len(x) != m.rows || len(y) != m.cols {
		return 0, sparseErrorf(opMulVec, ErrDimensionMismatch)
	}
	my := make([]float64, m.rows)
	m.m.MulVecTo(my, false, y)

	return floats.Dot(x, my), nil
}

// Diagonal returns the main diagonal (length min(rows, cols)).
func (m *CSR) Diagonal() []float64 {
	n := min(m.rows, m.cols)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.m.At(i, i)
	}

	return d
}

// NormInf returns the maximum absolute row sum.
func (m *CSR) NormInf() float64 {
	best := 0.0
	for i := 0; i < m.rows; i++ {
		_, vals := m.Row(i)
		best = math.Max(best, floats.Norm(vals, 1))
	}

	return best
}

// Transpose returns mᵀ as a new CSR.
func (m *CSR) Transpose() *CSR {
	ts := make(Triplets, 0, m.NNZ())
	m.m.DoNonZero(func(i, j int, v float64) {
		ts.Add(j, i, v)
	})
	// entries are unique and finite already
	t, _ := FromTriplets(m.cols, m.rows, ts, WithNoValidateNaNInf())

	return t
}

// Triplets exports the stored entries in row-major order.
func (m *CSR) Triplets() Triplets {
	out := make(Triplets, 0, m.NNZ())
	for i := 0; i < m.rows; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			out.Add(i, j, vals[k])
		}
	}

	return out
}

// Induced extracts the submatrix m[rows, cols] as a new CSR. Index lists may
// be in any order; the result row r corresponds to rows[r] and column c to
// cols[c].
//
// Errors: ErrBadShape for empty lists, ErrOutOfRange for bad indices.
func (m *CSR) Induced(rows, cols []int) (*CSR, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, sparseErrorf(opInduced, ErrBadShape)
	}
	colPos := make([]int, m.cols)
	for j := range colPos {
		colPos[j] = -1
	}
	for c, j := range cols {
		if j < 0 || j >= m.cols {
			return nil, sparseErrorf(opInduced, ErrOutOfRange)
		}
		colPos[j] = c
	}
	var ts Triplets
	for r, i := range rows {
		if i < 0 || i >= m.rows {
			return nil, sparseErrorf(opInduced, ErrOutOfRange)
		}
		idx, vals := m.Row(i)
		for k, j := range idx {
			if c := colPos[j]; c >= 0 {
				ts.Add(r, c, vals[k])
			}
		}
	}

	return FromTriplets(len(rows), len(cols), ts, WithNoValidateNaNInf())
}

// Add returns alpha·a + beta·b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *CSR, alpha, beta float64) (*CSR, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opAdd, ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, sparseErrorf(opAdd, ErrDimensionMismatch)
	}
	ts := make(Triplets, 0, a.NNZ()+b.NNZ())
	ts.Append(a.Triplets().Scale(alpha))
	ts.Append(b.Triplets().Scale(beta))

	return FromTriplets(a.rows, a.cols, ts, WithNoValidateNaNInf())
}
