// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/sparse"
)

// collapseTol is the squared relative b-norm under which a vector is treated
// as linearly dependent on the current basis.
const collapseTol = 1e-20

// EigenResult holds eigenpairs of a·x = λ·b·x. Deflation vectors come first,
// followed by the computed pairs in ascending order of λ. Vectors are
// b-orthonormal.
type EigenResult struct {
	Values     []float64
	Vectors    [][]float64
	Shift      float64
	Iterations int
}

// SolveShiftInvert computes the k eigenpairs of the symmetric pencil (a, b)
// with the smallest eigenvalues, where a is positive semidefinite, b is
// positive semidefinite (typically diagonal), and a − σ·b is positive definite
// for the shift σ < smallest eigenvalue.
//
// Implementation:
//   - Stage 1: σ (WithShift, or −rel·‖a‖∞/‖b‖∞) and one factorisation of
//     S = a − σ·b.
//   - Stage 2: b-orthonormalise deflation vectors D and a seeded random
//     block V of p vectors, b-orthogonal to D.
//   - Stage 3: repeat W = S⁻¹·b·V, b-orthonormalise W against D and itself,
//     Rayleigh–Ritz on K = Wᵀ·a·W (mat.EigenSym), V = W·Y, until the first
//     k − |D| Ritz pairs meet the residual test.
//
// Behavior highlights:
//   - Deflation vectors never mix with the iterated block, so a known kernel
//     (e.g. translations) is separated exactly from other near-zero modes.
//   - The block size is capped by rank(b) − |D|; asking for more pairs fails.
//
// Errors:
//   - sparse.ErrNonSquare / ErrDimensionMismatch for malformed input.
//   - ErrMassDeficient if b cannot support the request.
//   - ErrNotPositiveDefinite / ErrIllConditioned if S cannot be factorised.
//   - ErrEigenNotConverged (also conformal.ErrSolveFailed) on iteration limit.
//
// Determinism: fixed seed, fixed loop order; identical inputs give identical
// outputs.
func SolveShiftInvert(a, b *sparse.CSR, k int, opts ...Option) (*EigenResult, error) {
	o := gatherOptions(opts...)
	if err := sparse.ValidateSquare(a); err != nil {
		return nil, linalgErrorf(opEigen, err)
	}
	if err := sparse.ValidateSquare(b); err != nil {
		return nil, linalgErrorf(opEigen, err)
	}
	n, _ := a.Dims()
	if nb, _ := b.Dims(); nb != n || k <= 0 || k > n {
		return nil, linalgErrorf(opEigen, ErrDimensionMismatch)
	}
	for _, d := range o.deflate {
		if len(d) != n {
			return nil, linalgErrorf(opEigen, ErrDimensionMismatch)
		}
	}

	normA, normB := a.NormInf(), b.NormInf()
	if normB == 0 {
		return nil, linalgErrorf(opEigen, ErrMassDeficient)
	}
	sigma := o.shift
	if !o.hasShift {
		sigma = -o.relShift * math.Max(normA, 1) / normB
	}

	// locked basis: deflation vectors
	locked := newBBasis(b, n)
	for _, d := range o.deflate {
		if !locked.push(append([]float64(nil), d...)) {
			return nil, linalgErrorf(opEigen, fmt.Errorf("deflation vector: %w", ErrMassDeficient))
		}
	}
	res := &EigenResult{Shift: sigma}
	for i := range locked.vecs {
		q, _ := a.Dot(locked.vecs[i], locked.vecs[i])
		res.Values = append(res.Values, q)
		res.Vectors = append(res.Vectors, locked.vecs[i])
	}
	want := k - len(locked.vecs)
	if want <= 0 {
		res.Values, res.Vectors = res.Values[:k], res.Vectors[:k]

		return res, nil
	}

	capacity := massRank(b) - len(locked.vecs)
	if want > capacity {
		return nil, linalgErrorf(opEigen, fmt.Errorf("want %d, rank allows %d: %w", want, capacity, ErrMassDeficient))
	}
	p := o.block
	if p == 0 {
		p = 2*want + 4
	}
	p = min(max(p, want), capacity)

	s, err := sparse.Add(a, b, 1, -sigma)
	if err != nil {
		return nil, linalgErrorf(opEigen, err)
	}
	chol, err := FactorizeSPD(s, WithMaxCondition(o.maxCond))
	if err != nil {
		return nil, linalgErrorf(opEigen, err)
	}

	rng := rand.New(rand.NewSource(o.seed))
	v, err := startBlock(locked, p, rng)
	if err != nil {
		return nil, linalgErrorf(opEigen, err)
	}

	bv := make([]float64, n)
	for it := 1; it <= o.maxIter; it++ {
		// W = S⁻¹·b·V, b-orthonormal and b-orthogonal to the locked vectors
		basis := locked.clone()
		for j := range v {
			w := make([]float64, n)
			if err = b.MulVecTo(bv, v[j]); err != nil {
				return nil, linalgErrorf(opEigen, err)
			}
			if err = chol.SolveTo(w, bv); err != nil {
				return nil, linalgErrorf(opEigen, err)
			}
			if !basis.push(w) && !basis.pushRandom(rng, 4) {
				return nil, linalgErrorf(opEigen, fmt.Errorf("%w: %w", conformal.ErrSolveFailed, ErrEigenNotConverged))
			}
		}
		ws := basis.vecs[len(locked.vecs):]

		theta, y, aw, err := rayleighRitz(a, ws)
		if err != nil {
			return nil, linalgErrorf(opEigen, err)
		}

		// Ritz vectors and residuals
		next := make([][]float64, p)
		converged := true
		for j := 0; j < p; j++ {
			x := make([]float64, n)
			ax := make([]float64, n)
			for i := 0; i < p; i++ {
				yij := y.At(i, j)
				floats.AddScaled(x, yij, ws[i])
				floats.AddScaled(ax, yij, aw[i])
			}
			next[j] = x
			if j >= want {
				continue
			}
			if err = b.MulVecTo(bv, x); err != nil {
				return nil, linalgErrorf(opEigen, err)
			}
			floats.AddScaled(ax, -theta[j], bv)
			bound := o.tol * (normA + math.Abs(theta[j])*normB) * floats.Norm(x, 2)
			if floats.Norm(ax, 2) > bound {
				converged = false
			}
		}
		v = next

		if converged {
			for j := 0; j < want; j++ {
				res.Values = append(res.Values, theta[j])
				res.Vectors = append(res.Vectors, v[j])
			}
			res.Iterations = it
			conformal.Logger().Debug("linalg: eigen converged",
				"n", n, "k", k, "block", p, "iterations", it, "shift", sigma)

			return res, nil
		}
	}

	return nil, linalgErrorf(opEigen, fmt.Errorf("after %d iterations: %w: %w",
		o.maxIter, conformal.ErrSolveFailed, ErrEigenNotConverged))
}

// rayleighRitz solves the projected problem K·y = θ·y with K = Wᵀ·a·W for a
// b-orthonormal W. It returns ascending θ, eigenvectors as columns of y, and
// the products a·W.
func rayleighRitz(a *sparse.CSR, ws [][]float64) ([]float64, *mat.Dense, [][]float64, error) {
	p := len(ws)
	aw := make([][]float64, p)
	for i, w := range ws {
		aw[i] = make([]float64, len(w))
		if err := a.MulVecTo(aw[i], w); err != nil {
			return nil, nil, nil, err
		}
	}
	k := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			k.SetSym(i, j, 0.5*(floats.Dot(ws[i], aw[j])+floats.Dot(ws[j], aw[i])))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(k, true); !ok {
		return nil, nil, nil, fmt.Errorf("projected problem: %w: %w", conformal.ErrSolveFailed, ErrEigenNotConverged)
	}
	theta := es.Values(nil)
	y := mat.NewDense(p, p, nil)
	es.VectorsTo(y)

	return theta, y, aw, nil
}

// startBlock draws p pseudo-random vectors b-orthonormal to the locked basis.
func startBlock(locked *bBasis, p int, rng *rand.Rand) ([][]float64, error) {
	basis := locked.clone()
	for j := 0; j < p; j++ {
		if !basis.pushRandom(rng, 8) {
			return nil, fmt.Errorf("start block: %w", ErrMassDeficient)
		}
	}

	return basis.vecs[len(locked.vecs):], nil
}

// massRank counts rows of b with a non-zero diagonal.
func massRank(b *sparse.CSR) int {
	r := 0
	for _, d := range b.Diagonal() {
		if d != 0 {
			r++
		}
	}

	return r
}

// bBasis is a b-orthonormal set of vectors together with b·v for each.
type bBasis struct {
	b     *sparse.CSR
	n     int
	vecs  [][]float64
	bvecs [][]float64
}

func newBBasis(b *sparse.CSR, n int) *bBasis {
	return &bBasis{b: b, n: n}
}

func (s *bBasis) clone() *bBasis {
	return &bBasis{
		b:     s.b,
		n:     s.n,
		vecs:  append([][]float64(nil), s.vecs...),
		bvecs: append([][]float64(nil), s.bvecs...),
	}
}

// push b-orthogonalises x (two Gram–Schmidt passes), normalises it and
// appends it. It reports false, leaving the basis unchanged, when x is
// b-dependent on the basis.
func (s *bBasis) push(x []float64) bool {
	bx := make([]float64, s.n)
	_ = s.b.MulVecTo(bx, x)
	ref := floats.Dot(x, bx)
	if !(ref > 0) {
		return false
	}
	for pass := 0; pass < 2; pass++ {
		for i := range s.vecs {
			floats.AddScaled(x, -floats.Dot(s.bvecs[i], x), s.vecs[i])
		}
	}
	_ = s.b.MulVecTo(bx, x)
	nrm2 := floats.Dot(x, bx)
	if !(nrm2 > collapseTol*ref) {
		return false
	}
	inv := 1 / math.Sqrt(nrm2)
	floats.Scale(inv, x)
	floats.Scale(inv, bx)
	s.vecs = append(s.vecs, x)
	s.bvecs = append(s.bvecs, bx)

	return true
}

// pushRandom tries up to tries fresh random vectors.
func (s *bBasis) pushRandom(rng *rand.Rand, tries int) bool {
	for t := 0; t < tries; t++ {
		x := make([]float64, s.n)
		for i := range x {
			x[i] = 2*rng.Float64() - 1
		}
		if s.push(x) {
			return true
		}
	}

	return false
}
