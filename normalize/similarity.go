// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Target is the canonical position of the reference pair.
var Target = [2]r2.Vec{{X: -1}, {X: 1}}

// Similarity is the planar map p ↦ R·(p − Origin)·Scale + Offset with R a
// rotation. It is stored as the 2×2 linear part [[A, −B], [B, A]] applied
// after subtracting Origin, then Offset is added.
type Similarity struct {
	A, B   float64
	Origin r2.Vec
	Offset r2.Vec
}

// Identity is the identity map.
func Identity() Similarity { return Similarity{A: 1} }

// Apply maps one point.
func (s Similarity) Apply(p r2.Vec) r2.Vec {
	q := r2.Sub(p, s.Origin)

	return r2.Vec{
		X: s.A*q.X - s.B*q.Y + s.Offset.X,
		Y: s.B*q.X + s.A*q.Y + s.Offset.Y,
	}
}

// Transform maps every point of coords in place.
func (s Similarity) Transform(coords []r2.Vec) {
	for i, p := range coords {
		coords[i] = s.Apply(p)
	}
}

// Scale is the uniform scale factor.
func (s Similarity) Scale() float64 { return math.Hypot(s.A, s.B) }

// Rotation is the rotation angle in radians, in (−π, π].
func (s Similarity) Rotation() float64 { return math.Atan2(s.B, s.A) }

// Fit returns the similarity taking p0 to q0 and p1 to q1.
func Fit(p0, p1, q0, q1 r2.Vec) (Similarity, error) {
	d := r2.Sub(p1, p0)
	e := r2.Sub(q1, q0)
	dd := r2.Dot(d, d)
	if !(dd > 0) || math.IsInf(dd, 0) {
		return Similarity{}, normalizeErrorf(opFit, ErrDegenerateReference)
	}

	// (A + iB) = e / d
	return Similarity{
		A:      r2.Dot(e, d) / dd,
		B:      (e.Y*d.X - e.X*d.Y) / dd,
		Origin: r2.Scale(0.5, r2.Add(p0, p1)),
		Offset: r2.Scale(0.5, r2.Add(q0, q1)),
	}, nil
}

// Canonical returns the similarity that takes coords[pair[0]] to (−1,0) and
// coords[pair[1]] to (1,0).
func Canonical(coords []r2.Vec, pair [2]int) (Similarity, error) {
	for _, v := range pair {
		if v < 0 || v >= len(coords) {
			return Similarity{}, fmt.Errorf("%s: vertex %d: %w", opCanonical, v, ErrPairOutOfRange)
		}
	}
	p0, p1 := coords[pair[0]], coords[pair[1]]
	d := r2.Sub(p1, p0)
	dd := r2.Dot(d, d)
	if pair[0] == pair[1] || !(dd > 0) || math.IsInf(dd, 0) {
		return Similarity{}, normalizeErrorf(opCanonical, ErrDegenerateReference)
	}
	k := 2 / dd

	// rows d and d⊥ scaled by 2/|d|²
	return Similarity{
		A:      k * d.X,
		B:      -k * d.Y,
		Origin: r2.Scale(0.5, r2.Add(p0, p1)),
	}, nil
}

// Apply normalises coords in place. coords is untouched on error.
func Apply(coords []r2.Vec, pair [2]int) error {
	s, err := Canonical(coords, pair)
	if err != nil {
		return err
	}
	s.Transform(coords)

	return nil
}
