// SPDX-License-Identifier: MIT

package texcoord

import (
	"context"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/lscm"
	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/normalize"
	"github.com/katalvlaran/conformal/scm"
)

// Request describes one coordinate computation.
//
// The Engine caches solvers by Mesh pointer, Boundary slice and Revision.
// A caller that edits Mesh or Boundary in place between calls must change
// Revision, otherwise the cached factorisation of the old geometry is used.
type Request struct {
	Mesh     *mesh.Mesh
	Boundary []mesh.BoundaryEdge
	RefVerts [2]int
	Method   Method
	Revision uint64
}

// Result is the outcome of Engine.Solve. Coords is nil unless Status is
// StatusOK; it is a fresh slice owned by the caller.
type Result struct {
	Method Method
	Status Status
	Coords []r2.Vec
}

// Option configures an Engine.
type Option func(*Engine)

// WithLSCMOptions forwards options to the LSCM solver.
func WithLSCMOptions(opts ...lscm.Option) Option {
	return func(e *Engine) { e.lscmOpts = append(e.lscmOpts, opts...) }
}

// WithSCMOptions forwards options to the SCM solver.
func WithSCMOptions(opts ...scm.Option) Option {
	return func(e *Engine) { e.scmOpts = append(e.scmOpts, opts...) }
}

// topology identifies the snapshot a solver was initialised for: pointer
// identity of the inputs plus the caller's revision.
type topology struct {
	mesh     *mesh.Mesh
	boundary *mesh.BoundaryEdge
	edges    int
	revision uint64
}

func topologyOf(r Request) topology {
	t := topology{mesh: r.Mesh, edges: len(r.Boundary), revision: r.Revision}
	if len(r.Boundary) > 0 {
		t.boundary = &r.Boundary[0]
	}

	return t
}

// Engine runs requests one at a time. It is safe for concurrent use; calls
// are serialised.
type Engine struct {
	mu sync.Mutex

	lscmOpts []lscm.Option
	scmOpts  []scm.Option

	lscm    *lscm.Solver
	lscmTop topology
	scm     *scm.Solver
	scmTop  topology
}

// NewEngine returns an Engine with options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, fn := range opts {
		if fn != nil {
			fn(e)
		}
	}

	return e
}

// Solve computes coordinates for req. The returned error is nil exactly when
// Status is StatusOK. ctx is checked before work starts; a running solve is
// not interrupted.
func (e *Engine) Solve(ctx context.Context, req Request) (Result, error) {
	res := Result{Method: req.Method, Status: StatusSolveFailed}
	if err := ctx.Err(); err != nil {
		return res, texcoordErrorf(req.Method, err)
	}
	if req.Mesh == nil {
		return res, texcoordErrorf(req.Method, ErrNilMesh)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		coords []r2.Vec
		err    error
	)
	switch req.Method {
	case None:
		coords = passthrough(req.Mesh)
	case LeastSquaresConformal:
		coords, err = e.solveLSCM(req)
	case SpectralConformal:
		coords, err = e.solveSCM(req)
	default:
		err = ErrUnknownMethod
	}
	if err != nil {
		conformal.Logger().Warn("texcoord: solve failed",
			"method", req.Method.String(), "vertices", req.Mesh.VertexCount(), "err", err)

		return res, texcoordErrorf(req.Method, err)
	}

	res.Status, res.Coords = StatusOK, coords

	return res, nil
}

// Invalidate drops both cached solvers.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lscm, e.scm = nil, nil
}

func passthrough(m *mesh.Mesh) []r2.Vec {
	out := make([]r2.Vec, len(m.Positions))
	for i, p := range m.Positions {
		out[i] = r2.Vec{X: p.Y, Y: p.Z}
	}

	return out
}

func (e *Engine) solveLSCM(req Request) ([]r2.Vec, error) {
	top := topologyOf(req)
	switch {
	case e.lscm == nil || e.lscmTop != top:
		s := lscm.NewSolver(e.lscmOpts...)
		if err := s.Init(req.Mesh.Positions, req.Mesh.Faces, req.Boundary, req.RefVerts); err != nil {
			e.lscm = nil
			return nil, err
		}
		e.lscm, e.lscmTop = s, top
	case e.lscm.Pins() != req.RefVerts || e.lscm.Status() != lscm.StatusInitialized:
		if err := e.lscm.Reinit(req.RefVerts); err != nil {
			e.lscm = nil
			return nil, err
		}
	}

	out := make([]r2.Vec, req.Mesh.VertexCount())
	if err := e.lscm.Solve(normalize.Target, out); err != nil {
		e.lscm = nil
		return nil, err
	}
	// pins already sit on the targets, so this is the identity up to rounding
	if err := normalize.Apply(out, req.RefVerts); err != nil {
		return nil, fmt.Errorf("%w: %w", conformal.ErrSolveFailed, err)
	}

	return out, nil
}

func (e *Engine) solveSCM(req Request) ([]r2.Vec, error) {
	top := topologyOf(req)
	if e.scm == nil || e.scmTop != top {
		s := scm.NewSolver(e.scmOpts...)
		if err := s.Init(req.Mesh.Positions, req.Mesh.Faces, req.Boundary); err != nil {
			e.scm = nil
			return nil, err
		}
		e.scm, e.scmTop = s, top
	}

	out := make([]r2.Vec, req.Mesh.VertexCount())
	if err := e.scm.Solve(out); err != nil {
		e.scm = nil
		return nil, err
	}
	if err := normalize.Apply(out, req.RefVerts); err != nil {
		return nil, fmt.Errorf("%w: %w", conformal.ErrSolveFailed, err)
	}

	return out, nil
}
