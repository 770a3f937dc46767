// SPDX-License-Identifier: MIT

package sparse

// Triplet is one (row, col, value) contribution.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Triplets is an append-only contribution list. Duplicates are expected and
// summed by FromTriplets.
type Triplets []Triplet

// Add appends one contribution.
func (t *Triplets) Add(row, col int, value float64) {
	*t = append(*t, Triplet{Row: row, Col: col, Value: value})
}

// Append appends all contributions of other.
func (t *Triplets) Append(other Triplets) {
	*t = append(*t, other...)
}

// Scale returns a copy with every value multiplied by alpha.
func (t Triplets) Scale(alpha float64) Triplets {
	out := make(Triplets, len(t))
	for i, e := range t {
		out[i] = Triplet{Row: e.Row, Col: e.Col, Value: alpha * e.Value}
	}

	return out
}

// Symmetrize returns (T + Tᵀ)/2 as a triplet list: every entry is halved and
// its transpose is appended, also halved. The materialised matrix is
// symmetric up to the rounding of duplicate sums.
func Symmetrize(t Triplets) Triplets {
	out := make(Triplets, 0, 2*len(t))
	for _, e := range t {
		out = append(out, Triplet{Row: e.Row, Col: e.Col, Value: 0.5 * e.Value})
	}
	for _, e := range t {
		out = append(out, Triplet{Row: e.Col, Col: e.Row, Value: 0.5 * e.Value})
	}

	return out
}

// RepeatDiagonal places copies of a rows×cols block along the block
// diagonal: copy k is shifted by (k·rows, k·cols). count must be positive.
func RepeatDiagonal(t Triplets, rows, cols, count int) (Triplets, error) {
	if rows <= 0 || cols <= 0 || count <= 0 {
		return nil, sparseErrorf(opRepeat, ErrBadShape)
	}
	out := make(Triplets, 0, count*len(t))
	for k := 0; k < count; k++ {
		for _, e := range t {
			if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
				return nil, sparseErrorf(opRepeat, ErrOutOfRange)
			}
			out = append(out, Triplet{Row: e.Row + k*rows, Col: e.Col + k*cols, Value: e.Value})
		}
	}

	return out, nil
}
