// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/conformal/sparse"
)

// MustCSR materialises ts or fails the test.
func MustCSR(t *testing.T, rows, cols int, ts sparse.Triplets) *sparse.CSR {
	t.Helper()
	m, err := sparse.FromTriplets(rows, cols, ts)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i][j] or fails the test.
func MustAt(t *testing.T, m *sparse.CSR, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestFromTriplets_SumsDuplicates(t *testing.T) {
	var ts sparse.Triplets
	ts.Add(0, 1, 1.5)
	ts.Add(1, 0, 2)
	ts.Add(0, 1, 2.5)
	ts.Add(2, 2, -1)
	ts.Add(0, 0, 3)

	m := MustCSR(t, 3, 3, ts)
	assert.Equal(t, 4, m.NNZ())
	assert.Equal(t, 4.0, MustAt(t, m, 0, 1))
	assert.Equal(t, 2.0, MustAt(t, m, 1, 0))
	assert.Equal(t, 3.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 0.0, MustAt(t, m, 1, 1))

	cols, vals := m.Row(0)
	assert.Equal(t, []int{0, 1}, cols)
	assert.Equal(t, []float64{3, 4}, vals)
}

func TestFromTriplets_Errors(t *testing.T) {
	_, err := sparse.FromTriplets(0, 3, nil)
	assert.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.FromTriplets(2, 2, sparse.Triplets{{Row: 2, Col: 0, Value: 1}})
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.FromTriplets(2, 2, sparse.Triplets{{Row: 0, Col: 0, Value: math.NaN()}})
	assert.ErrorIs(t, err, sparse.ErrNaNInf)

	_, err = sparse.FromTriplets(2, 2, sparse.Triplets{{Row: 0, Col: 0, Value: math.Inf(1)}}, sparse.WithNoValidateNaNInf())
	assert.NoError(t, err)

	_, err = MustCSR(t, 2, 2, nil).At(0, 5)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestFromTriplets_DropZeros(t *testing.T) {
	ts := sparse.Triplets{{Row: 0, Col: 1, Value: 1}, {Row: 0, Col: 1, Value: -1}, {Row: 1, Col: 1, Value: 2}}
	kept := MustCSR(t, 2, 2, ts)
	assert.Equal(t, 2, kept.NNZ())

	dropped, err := sparse.FromTriplets(2, 2, ts, sparse.WithDropZeros())
	require.NoError(t, err)
	assert.Equal(t, 1, dropped.NNZ())
}

func TestSymmetrize(t *testing.T) {
	ts := sparse.Triplets{{Row: 0, Col: 2, Value: -0.5}, {Row: 1, Col: 3, Value: 0.5}}
	m := MustCSR(t, 4, 4, sparse.Symmetrize(ts))

	require.NoError(t, sparse.ValidateSymmetric(m, 0))
	assert.Equal(t, -0.25, MustAt(t, m, 0, 2))
	assert.Equal(t, -0.25, MustAt(t, m, 2, 0))
	assert.Equal(t, 0.25, MustAt(t, m, 3, 1))
}

func TestRepeatDiagonal(t *testing.T) {
	block := sparse.Triplets{{Row: 0, Col: 1, Value: 7}}
	out, err := sparse.RepeatDiagonal(block, 2, 2, 2)
	require.NoError(t, err)
	m := MustCSR(t, 4, 4, out)
	assert.Equal(t, 7.0, MustAt(t, m, 0, 1))
	assert.Equal(t, 7.0, MustAt(t, m, 2, 3))
	assert.Equal(t, 2, m.NNZ())

	_, err = sparse.RepeatDiagonal(sparse.Triplets{{Row: 3, Col: 0, Value: 1}}, 2, 2, 2)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestMulVecAndDot(t *testing.T) {
	m := MustCSR(t, 2, 3, sparse.Triplets{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 2, Value: 2},
		{Row: 1, Col: 1, Value: 3},
	})
	dst := make([]float64, 2)
	require.NoError(t, m.MulVecTo(dst, []float64{1, 2, 3}))
	assert.Equal(t, []float64{7, 6}, dst)

	assert.ErrorIs(t, m.MulVecTo(dst, []float64{1}), sparse.ErrDimensionMismatch)

	d, err := m.Dot([]float64{1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 13.0, d)
}

func TestTransposeAndInduced(t *testing.T) {
	m := MustCSR(t, 3, 3, sparse.Triplets{
		{Row: 0, Col: 1, Value: 1}, {Row: 0, Col: 2, Value: 2},
		{Row: 2, Col: 0, Value: 3}, {Row: 1, Col: 1, Value: 4},
	})
	tr := m.Transpose()
	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, MustAt(t, tr, 1, 0))
	assert.Equal(t, 2.0, MustAt(t, tr, 2, 0))
	assert.Equal(t, 3.0, MustAt(t, tr, 0, 2))

	sub, err := m.Induced([]int{2, 0}, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, MustAt(t, sub, 0, 0))
	assert.Equal(t, 0.0, MustAt(t, sub, 0, 1))
	assert.Equal(t, 2.0, MustAt(t, sub, 1, 1))

	_, err = m.Induced(nil, []int{0})
	assert.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestAddDiagonalNorm(t *testing.T) {
	a := MustCSR(t, 2, 2, sparse.Triplets{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 0, Value: -2}})
	b := MustCSR(t, 2, 2, sparse.Triplets{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}})

	s, err := sparse.Add(a, b, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1}, s.Diagonal())
	assert.Equal(t, 5.0, s.NormInf())

	_, err = sparse.Add(a, MustCSR(t, 3, 3, nil), 1, 1)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Add(nil, b, 1, 1)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	m := MustCSR(t, 2, 2, sparse.Triplets{{Row: 0, Col: 1, Value: 1}, {Row: 1, Col: 0, Value: 1.1}})
	assert.ErrorIs(t, sparse.ValidateSymmetric(m, 1e-3), sparse.ErrAsymmetry)
	assert.True(t, sparse.IsSymmetric(m, 0.2))
	assert.ErrorIs(t, sparse.ValidateSymmetric(MustCSR(t, 2, 3, nil), 0), sparse.ErrNonSquare)
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { sparse.WithEpsilon(-1) })
}

func TestCSR_MatrixView(t *testing.T) {
	var ts sparse.Triplets
	ts.Add(0, 0, 2)
	ts.Add(1, 2, -1)
	ts.Add(1, 2, 4)
	ts.Add(2, 1, 5)
	m := MustCSR(t, 3, 3, ts)

	want := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 0, 3,
		0, 5, 0,
	})
	view := m.Matrix()
	r, c := view.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.True(t, mat.Equal(want, view))
	assert.True(t, mat.Equal(want.T(), m.Transpose().Matrix()))

	// MulVecTo overwrites, it never accumulates into dst
	dst := []float64{100, 100, 100}
	require.NoError(t, m.MulVecTo(dst, []float64{1, 1, 1}))
	assert.Equal(t, []float64{2, 3, 5}, dst)
}

func TestTriplets_Append(t *testing.T) {
	a := sparse.Triplets{{Row: 0, Col: 0, Value: 1}}
	b := sparse.Triplets{{Row: 0, Col: 0, Value: 2}, {Row: 1, Col: 1, Value: 3}}
	a.Append(b)
	require.Len(t, a, 3)
	assert.Equal(t, sparse.Triplet{Row: 1, Col: 1, Value: 3}, a[2])

	m := MustCSR(t, 2, 2, a)
	assert.Equal(t, []float64{3, 3}, m.Diagonal())
}
