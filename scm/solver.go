// SPDX-License-Identifier: MIT

package scm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/linalg"
	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/operator"
	"github.com/katalvlaran/conformal/sparse"
)

// Status is the lifecycle state of a Solver.
type Status uint8

const (
	// StatusDefault: no matrices.
	StatusDefault Status = iota
	// StatusInitialized: Lc and B are built.
	StatusInitialized
	// StatusSolved: the selected eigenvector is cached.
	StatusSolved
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "Initialized"
	case StatusSolved:
		return "Solved"
	default:
		return "Default"
	}
}

// Solver is a spectral conformal solver. The zero value is usable with
// default options.
type Solver struct {
	opts   Options
	set    bool
	status Status

	n      int
	energy *sparse.CSR
	mass   *sparse.CSR

	values   []float64
	selected int
	vector   []float64
}

// NewSolver returns a Solver with options applied.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{opts: defaultOptions(), set: true}
	for _, fn := range opts {
		if fn != nil {
			fn(&s.opts)
		}
	}

	return s
}

// Status reports the lifecycle state.
func (s *Solver) Status() Status { return s.status }

// Init builds Lc = 2A − Ld and the boundary mass B. No eigen work is done.
// Any previous state, including a cached eigenvector, is discarded.
//
// Errors (all wrap conformal.ErrDegenerateSystem):
//   - ErrNoBoundary for a closed mesh.
//   - ErrDisconnected when the faces do not connect all n vertices.
//   - operator.ErrDegenerateFace and mesh validation errors.
func (s *Solver) Init(positions []r3.Vec, faces [][3]int, boundary []mesh.BoundaryEdge) error {
	s.reset()
	n := len(positions)
	if err := mesh.ValidateFaces(n, faces); err != nil {
		return degenerate(opInit, err)
	}
	if len(boundary) == 0 {
		return degenerate(opInit, ErrNoBoundary)
	}
	if comps := mesh.ConnectedComponents(n, faces); len(comps) != 1 {
		return degenerate(opInit, fmt.Errorf("%d components: %w", len(comps), ErrDisconnected))
	}
	sys, err := operator.Assemble(positions, faces, boundary, s.opts.operator...)
	if err != nil {
		return degenerate(opInit, err)
	}
	b, err := operator.MassMatrix(n, boundary)
	if err != nil {
		return degenerate(opInit, err)
	}

	s.n, s.energy, s.mass = n, sys.Energy, b
	s.status = StatusInitialized

	return nil
}

// Solve writes the selected eigenvector as (u, v) pairs into result. The
// eigen solve runs on the first call after Init; later calls reuse it.
// result is untouched on error.
//
// Errors: conformal.ErrNotInitialized, ErrBufferSize, or a linalg error
// wrapped with conformal.ErrSolveFailed.
func (s *Solver) Solve(result []r2.Vec) error {
	if s.status == StatusDefault {
		return fmt.Errorf("%s: %w", opSolve, conformal.ErrNotInitialized)
	}
	if len(result) != s.n {
		return fmt.Errorf("%s: got %d want %d: %w", opSolve, len(result), s.n, ErrBufferSize)
	}
	if s.status != StatusSolved {
		if err := s.decompose(); err != nil {
			return solveFailed(opSolve, err)
		}
	}
	for i := range result {
		result[i] = r2.Vec{X: s.vector[i], Y: s.vector[s.n+i]}
	}

	return nil
}

// Eigenvalues returns a copy of the computed spectrum, translations first.
// It is nil until the first successful Solve.
func (s *Solver) Eigenvalues() []float64 {
	return append([]float64(nil), s.values...)
}

// Selected returns the index of the eigenpair used for the layout, or −1
// before the first successful Solve.
func (s *Solver) Selected() int {
	if s.status != StatusSolved {
		return -1
	}

	return s.selected
}

func (s *Solver) decompose() error {
	n := s.n
	tu, tv := make([]float64, 2*n), make([]float64, 2*n)
	for i := 0; i < n; i++ {
		tu[i], tv[n+i] = 1, 1
	}
	opts := []linalg.Option{
		linalg.WithTolerance(DefaultTolerance),
		linalg.WithDeflation(tu, tv),
	}
	opts = append(opts, s.opts.eigen...)

	res, err := linalg.SolveShiftInvert(s.energy, s.mass, s.opts.pairs, opts...)
	if err != nil {
		return err
	}
	idx, err := s.pick(res.Values)
	if err != nil {
		return err
	}
	for _, x := range res.Vectors[idx] {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return linalg.ErrEigenNotConverged
		}
	}

	s.values = res.Values
	s.selected = idx
	s.vector = res.Vectors[idx]
	s.status = StatusSolved
	conformal.Logger().Debug("scm: solved",
		"vertices", n, "pairs", len(res.Values), "selected", idx,
		"eigenvalue", res.Values[idx], "iterations", res.Iterations)

	return nil
}

func (s *Solver) pick(values []float64) (int, error) {
	switch s.opts.selection {
	case SelectAboveThreshold:
		cut := s.opts.zeroTol * math.Max(s.energy.NormInf(), 1) / s.mass.NormInf()
		for i, v := range values {
			if v > cut {
				return i, nil
			}
		}

		return 0, fmt.Errorf("none above %g: %w", cut, ErrNoMode)
	default:
		if len(values) <= TrivialPairs {
			return 0, ErrNoMode
		}

		return TrivialPairs, nil
	}
}

func (s *Solver) reset() {
	opts := s.opts
	if !s.set {
		opts = defaultOptions()
	}
	*s = Solver{opts: opts, set: true}
}
