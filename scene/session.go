// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/asset"
	"github.com/katalvlaran/conformal/mesh"
	"github.com/katalvlaran/conformal/pipeline"
	"github.com/katalvlaran/conformal/texcoord"
)

// Stage names as reported to pipeline handlers and logs.
const (
	StageLoad    = "load"
	StageExtract = "extract"
	StageSolve   = "solve"
)

// DefaultMethod is the method of a new Session.
const DefaultMethod = texcoord.LeastSquaresConformal

// Option configures a Session.
type Option func(*Session)

// WithEngine sets the engine used by solve stages.
func WithEngine(e *texcoord.Engine) Option {
	return func(s *Session) { s.engine = e }
}

// WithQueueOptions forwards options to the session's queue.
func WithQueueOptions(opts ...pipeline.Option) Option {
	return func(s *Session) { s.queueOpts = append(s.queueOpts, opts...) }
}

// WithMethod sets the initial method.
func WithMethod(m texcoord.Method) Option {
	return func(s *Session) { s.method = m }
}

// Snapshot is a copy of the session's displayable state.
type Snapshot struct {
	// Selected is the most recently selected mesh.
	Selected asset.Handle
	// Method is the most recently selected method.
	Method texcoord.Method

	// Asset is the loaded mesh matching Selected, if any.
	Asset *asset.Asset
	// Loops is the number of boundary loops of Asset.
	Loops int

	// Coords is the last good layout; CoordsOf and CoordsMethod say where it
	// came from.
	Coords       []r2.Vec
	CoordsOf     asset.Handle
	CoordsMethod texcoord.Method

	Status texcoord.Status
	Err    error
}

// shape is the mesh state the stages build up for one generation.
type shape struct {
	gen       uint64
	asset     *asset.Asset
	boundary  []mesh.BoundaryEdge
	loops     int
	extracted bool
}

// Session owns the queue, engine and state of one viewer.
type Session struct {
	reg       *asset.Registry
	engine    *texcoord.Engine
	queue     *pipeline.Queue
	queueOpts []pipeline.Option

	mu     sync.Mutex
	gen    uint64
	handle asset.Handle
	method texcoord.Method
	shape  shape

	coords       []r2.Vec
	coordsOf     asset.Handle
	coordsMethod texcoord.Method
	status       texcoord.Status
	err          error
}

// NewSession returns an idle session reading meshes from reg.
func NewSession(reg *asset.Registry, opts ...Option) *Session {
	s := &Session{reg: reg, method: DefaultMethod}
	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}
	if s.engine == nil {
		s.engine = texcoord.NewEngine()
	}
	s.queue = pipeline.NewQueue(s.queueOpts...)

	return s
}

// SelectMesh schedules load, boundary extraction and solve for h.
func (s *Session) SelectMesh(h asset.Handle) error {
	if _, ok := s.reg.Source(h); !ok {
		return fmt.Errorf("scene: select %q: %w", h, asset.ErrUnknownHandle)
	}
	s.mu.Lock()
	s.handle = h
	s.gen++
	s.mu.Unlock()

	s.queue.Barrier()
	if err := s.push(StageLoad, s.loadTask); err != nil {
		return err
	}
	s.queue.Barrier()
	if err := s.push(StageExtract, s.extractTask); err != nil {
		return err
	}
	s.queue.Barrier()

	return s.push(StageSolve, s.solveTask)
}

// SelectMethod schedules a solve of the current mesh with m.
func (s *Session) SelectMethod(m texcoord.Method) error {
	if m > texcoord.SpectralConformal {
		return fmt.Errorf("scene: select %s: %w", m, texcoord.ErrUnknownMethod)
	}
	s.mu.Lock()
	s.method = m
	s.mu.Unlock()

	s.queue.Barrier()

	return s.push(StageSolve, s.solveTask)
}

func (s *Session) push(name string, build func() (pipeline.Task, pipeline.Handler)) error {
	task, h := build()
	if err := s.queue.Push(name, task, h); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	return nil
}

// Update delivers finished stages and launches the next one without
// blocking. It returns the number of events delivered.
func (s *Session) Update() int { return s.queue.Poll() }

// Wait runs Update until nothing is pending or ctx is done.
func (s *Session) Wait(ctx context.Context) error { return s.queue.Flush(ctx) }

// Busy reports whether stages are pending; selection controls are expected
// to be disabled meanwhile.
func (s *Session) Busy() bool { return s.queue.Pending() > 0 }

// Close stops the queue. Pending stages are dropped.
func (s *Session) Close() { s.queue.Close() }

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Selected:     s.handle,
		Method:       s.method,
		Coords:       append([]r2.Vec(nil), s.coords...),
		CoordsOf:     s.coordsOf,
		CoordsMethod: s.coordsMethod,
		Status:       s.status,
		Err:          s.err,
	}
	if s.shape.gen == s.gen && s.shape.asset != nil {
		snap.Asset, snap.Loops = s.shape.asset, s.shape.loops
	}

	return snap
}

// fail records a stage error; coordinates are kept.
func (s *Session) fail(stage string, err error) {
	s.status, s.err = texcoord.StatusSolveFailed, err
	conformal.Logger().Warn("scene: stage failed", "stage", stage, "err", err)
}

// loadTask gets the selected asset from the registry.
func (s *Session) loadTask() (pipeline.Task, pipeline.Handler) {
	var (
		gen    uint64
		handle asset.Handle
		out    *asset.Asset
	)
	task := func(context.Context) error {
		a, err := s.reg.Get(handle)
		out = a

		return err
	}
	handler := func(ev pipeline.Event) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch ev.Kind {
		case pipeline.BeforeSubmit:
			gen, handle = s.gen, s.handle
		case pipeline.AfterComplete:
			if gen != s.gen {
				return true
			}
			if ev.Err != nil {
				s.fail(StageLoad, ev.Err)
				return true
			}
			s.shape = shape{gen: gen, asset: out}
		}

		return true
	}

	return task, handler
}

// extractTask computes the boundary of the loaded mesh.
func (s *Session) extractTask() (pipeline.Task, pipeline.Handler) {
	var (
		gen      uint64
		m        *mesh.Mesh
		boundary []mesh.BoundaryEdge
		loops    int
	)
	task := func(context.Context) error {
		b, err := m.Boundary()
		if err != nil {
			return err
		}
		boundary = b
		ls, err := mesh.BoundaryLoops(b)
		if err != nil && !errors.Is(err, mesh.ErrOpenLoop) {
			return err
		}
		loops = len(ls)

		return nil
	}
	handler := func(ev pipeline.Event) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch ev.Kind {
		case pipeline.BeforeSubmit:
			if s.shape.gen != s.gen || s.shape.asset == nil {
				return false
			}
			gen, m = s.gen, s.shape.asset.Mesh
		case pipeline.AfterComplete:
			if gen != s.gen {
				return true
			}
			if ev.Err != nil {
				s.fail(StageExtract, ev.Err)
				return true
			}
			s.shape.boundary, s.shape.loops, s.shape.extracted = boundary, loops, true
			if loops != 1 {
				conformal.Logger().Warn("scene: mesh is not a single disk",
					"handle", string(s.shape.asset.Handle), "loops", loops)
			}
		}

		return true
	}

	return task, handler
}

// solveTask computes coordinates for the current mesh and method.
func (s *Session) solveTask() (pipeline.Task, pipeline.Handler) {
	var (
		gen    uint64
		handle asset.Handle
		req    texcoord.Request
		res    texcoord.Result
	)
	task := func(ctx context.Context) error {
		var err error
		res, err = s.engine.Solve(ctx, req)

		return err
	}
	handler := func(ev pipeline.Event) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch ev.Kind {
		case pipeline.BeforeSubmit:
			if s.shape.gen != s.gen || !s.shape.extracted {
				return false
			}
			gen, handle = s.gen, s.shape.asset.Handle
			req = texcoord.Request{
				Mesh:     s.shape.asset.Mesh,
				Boundary: s.shape.boundary,
				RefVerts: s.shape.asset.RefVerts,
				Method:   s.method,
			}
		case pipeline.AfterComplete:
			if gen != s.gen {
				conformal.Logger().Debug("scene: stale result dropped", "handle", string(handle))
				return true
			}
			if ev.Err != nil {
				s.fail(StageSolve, ev.Err)
				return true
			}
			s.coords, s.coordsOf, s.coordsMethod = res.Coords, handle, res.Method
			s.status, s.err = texcoord.StatusOK, nil
		}

		return true
	}

	return task, handler
}
