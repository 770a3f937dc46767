// SPDX-License-Identifier: MIT

package lscm

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
	// StatusDefault: no usable factorisation.
	StatusDefault Status = iota
	// StatusInitialized: Q_ff is factorised for the current pins.
	StatusInitialized
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "Initialized"
	default:
		return "Default"
	}
}

// Solver is a least-squares conformal solver. The zero value is ready for
// Init with default options.
type Solver struct {
	opts   Options
	status Status
	sys    *operator.System

	pins  [2]int
	fixed [4]int // u(v0), u(v1), v(v0), v(v1)
	free  []int
	qfc   *sparse.CSR
	chol  *linalg.Cholesky

	xc, rhs, xf []float64
}

// NewSolver returns a Solver with options applied.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{}
	for _, fn := range opts {
		if fn != nil {
			fn(&s.opts)
		}
	}

	return s
}

// Status reports the lifecycle state.
func (s *Solver) Status() Status { return s.status }

// Pins returns the pinned vertex pair of the current factorisation.
func (s *Solver) Pins() [2]int { return s.pins }

// Init assembles Q = 2A − Ld for the snapshot, pins the pair and factorises
// the reduced system. Any previous state is discarded first.
//
// Errors (all wrap conformal.ErrDegenerateSystem):
//   - ErrPinOutOfRange, ErrCoincidentPins.
//   - ErrDisconnected when the faces do not connect all n vertices.
//   - operator.ErrDegenerateFace and mesh validation errors.
//   - ErrSingular when Q_ff is not numerically positive definite.
//
// Closed meshes (empty boundary) are accepted: A vanishes and the pinned
// Laplacian is still positive definite, though the layout is not conformal.
func (s *Solver) Init(positions []r3.Vec, faces [][3]int, boundary []mesh.BoundaryEdge, pins [2]int) error {
	s.reset()
	n := len(positions)
	if err := checkPins(n, pins); err != nil {
		return degenerate(opInit, err)
	}
	if err := mesh.ValidateFaces(n, faces); err != nil {
		return degenerate(opInit, err)
	}
	if comps := mesh.ConnectedComponents(n, faces); len(comps) != 1 {
		return degenerate(opInit, fmt.Errorf("%d components: %w", len(comps), ErrDisconnected))
	}
	sys, err := operator.Assemble(positions, faces, boundary, s.opts.operator...)
	if err != nil {
		return degenerate(opInit, err)
	}
	s.sys = sys

	return s.factor(opInit, pins)
}

// Reinit re-pins an initialised mesh and refactorises. Q is reused.
func (s *Solver) Reinit(pins [2]int) error {
	if s.sys == nil {
		return fmt.Errorf("%s: %w", opReinit, conformal.ErrNotInitialized)
	}
	s.status = StatusDefault
	if err := checkPins(s.sys.N, pins); err != nil {
		return degenerate(opReinit, err)
	}

	return s.factor(opReinit, pins)
}

func (s *Solver) factor(tag string, pins [2]int) error {
	n := s.sys.N
	v0, v1 := pins[0], pins[1]
	fixed := [4]int{v0, v1, v0 + n, v1 + n}
	isFixed := make([]bool, 2*n)
	for _, i := range fixed {
		isFixed[i] = true
	}
	free := make([]int, 0, 2*n-4)
	for i := 0; i < 2*n; i++ {
		if !isFixed[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return degenerate(tag, ErrSingular)
	}

	q := s.sys.Energy
	qff, err := q.Induced(free, free)
	if err != nil {
		return degenerate(tag, err)
	}
	qfc, err := q.Induced(free, fixed[:])
	if err != nil {
		return degenerate(tag, err)
	}
	chol, err := linalg.FactorizeSPD(qff, s.opts.factor...)
	if err != nil {
		return degenerate(tag, fmt.Errorf("%w: %w", ErrSingular, err))
	}

	s.pins, s.fixed, s.free = pins, fixed, free
	s.qfc, s.chol = qfc, chol
	s.xc = make([]float64, 4)
	s.rhs = make([]float64, len(free))
	s.xf = make([]float64, len(free))
	s.status = StatusInitialized
	conformal.Logger().Debug("lscm: initialized",
		"vertices", n, "free", len(free), "bandwidth", chol.Bandwidth(), "pins", pins)

	return nil
}

// Solve pins values[0] at the first pinned vertex and values[1] at the
// second, solves for every other vertex and writes all n coordinates into
// result. result is untouched on error.
//
// Errors: conformal.ErrNotInitialized, ErrBufferSize, or ErrNonFinite
// (wrapping conformal.ErrSolveFailed).
func (s *Solver) Solve(values [2]r2.Vec, result []r2.Vec) error {
	if s.status != StatusInitialized {
		return fmt.Errorf("%s: %w", opSolve, conformal.ErrNotInitialized)
	}
	n := s.sys.N
	if len(result) != n {
		return fmt.Errorf("%s: got %d want %d: %w", opSolve, len(result), n, ErrBufferSize)
	}

	s.xc[0], s.xc[1] = values[0].X, values[1].X
	s.xc[2], s.xc[3] = values[0].Y, values[1].Y
	if err := s.qfc.MulVecTo(s.rhs, s.xc); err != nil {
		return solveFailed(opSolve, err)
	}
	for i := range s.rhs {
		s.rhs[i] = -s.rhs[i]
	}
	if err := s.chol.SolveTo(s.xf, s.rhs); err != nil {
		return solveFailed(opSolve, err)
	}
	for _, x := range s.xf {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return solveFailed(opSolve, ErrNonFinite)
		}
	}

	for k, i := range s.free {
		if i < n {
			result[i].X = s.xf[k]
		} else {
			result[i-n].Y = s.xf[k]
		}
	}
	result[s.pins[0]] = values[0]
	result[s.pins[1]] = values[1]

	return nil
}

// Energy returns the conformal energy ½·xᵀ·Q·x of a layout, where x packs
// the u and v coordinates of coords. It is zero for a conformal map.
func (s *Solver) Energy(coords []r2.Vec) (float64, error) {
	if s.sys == nil {
		return 0, fmt.Errorf("%s: %w", opEnergy, conformal.ErrNotInitialized)
	}
	n := s.sys.N
	if len(coords) != n {
		return 0, fmt.Errorf("%s: %w", opEnergy, ErrBufferSize)
	}
	x := make([]float64, 2*n)
	for i, c := range coords {
		x[i], x[n+i] = c.X, c.Y
	}
	e, err := s.sys.Energy.Dot(x, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEnergy, err)
	}

	return 0.5 * e, nil
}

func (s *Solver) reset() {
	opts := s.opts
	*s = Solver{opts: opts}
}

func checkPins(n int, pins [2]int) error {
	for _, v := range pins {
		if v < 0 || v >= n {
			return fmt.Errorf("pin %d: %w", v, ErrPinOutOfRange)
		}
	}
	if pins[0] == pins[1] {
		return ErrCoincidentPins
	}

	return nil
}
