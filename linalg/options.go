// SPDX-License-Identifier: MIT

package linalg

import "math"

// Factorisation defaults.
const (
	// DefaultMaxCondition rejects factorisations whose 1-norm condition
	// estimate exceeds this value.
	DefaultMaxCondition = 1e14
)

// Eigen solver defaults.
const (
	// DefaultRelativeShift scales the automatic shift σ = −rel·‖a‖∞/‖b‖∞.
	DefaultRelativeShift = 1e-6

	// DefaultTolerance bounds the residual ‖a·x − θ·b·x‖ relative to
	// (‖a‖∞ + |θ|·‖b‖∞)·‖x‖.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps subspace iterations.
	DefaultMaxIterations = 1000

	// DefaultSeed seeds the starting block.
	DefaultSeed int64 = 1
)

const (
	panicCondInvalid  = "linalg: WithMaxCondition: limit must be > 1"
	panicShiftInvalid = "linalg: WithShift: shift must be finite"
	panicRelInvalid   = "linalg: WithRelativeShift: value must be finite and > 0"
	panicTolInvalid   = "linalg: WithTolerance: tol must be finite and > 0"
	panicIterInvalid  = "linalg: WithMaxIterations: n must be > 0"
	panicBlockInvalid = "linalg: WithBlockSize: p must be > 0"
)

// Option configures FactorizeSPD and SolveShiftInvert.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxCond  float64
	shift    float64
	hasShift bool
	relShift float64
	tol      float64
	maxIter  int
	seed     int64
	block    int
	deflate  [][]float64
}

// WithMaxCondition sets the accepted condition estimate. Panics if <= 1.
func WithMaxCondition(limit float64) Option {
	if math.IsNaN(limit) || limit <= 1 {
		panic(panicCondInvalid)
	}

	return func(o *Options) { o.maxCond = limit }
}

// WithShift fixes σ. a − σ·b must be positive definite.
func WithShift(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(panicShiftInvalid)
	}

	return func(o *Options) { o.shift, o.hasShift = sigma, true }
}

// WithRelativeShift sets rel in the automatic shift. Ignored with WithShift.
func WithRelativeShift(rel float64) Option {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel <= 0 {
		panic(panicRelInvalid)
	}

	return func(o *Options) { o.relShift = rel }
}

// WithTolerance sets the relative residual tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps subspace iterations.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSeed seeds the pseudo-random starting block.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithBlockSize sets the number of iterated vectors, excluding deflation
// vectors. It is raised to the number of wanted pairs when smaller.
func WithBlockSize(p int) Option {
	if p <= 0 {
		panic(panicBlockInvalid)
	}

	return func(o *Options) { o.block = p }
}

// WithDeflation supplies known eigenvectors (typically the kernel of a).
// They are b-orthonormalised, kept out of the iterated block and returned
// first, with their Rayleigh quotients as values. Vectors are copied.
func WithDeflation(vecs ...[]float64) Option {
	cp := make([][]float64, len(vecs))
	for i, v := range vecs {
		cp[i] = append([]float64(nil), v...)
	}

	return func(o *Options) { o.deflate = cp }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxCond:  DefaultMaxCondition,
		relShift: DefaultRelativeShift,
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIterations,
		seed:     DefaultSeed,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
