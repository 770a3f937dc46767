// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/conformal"
)

// Task is one unit of background work.
type Task func(ctx context.Context) error

// EventKind distinguishes the two callback points of a task.
type EventKind uint8

const (
	// BeforeSubmit fires on the polling goroutine before the task runs.
	BeforeSubmit EventKind = iota
	// AfterComplete fires on the polling goroutine after the task's stage
	// finished. Event.Err carries the task's error.
	AfterComplete
)

func (k EventKind) String() string {
	if k == BeforeSubmit {
		return "BeforeSubmit"
	}

	return "AfterComplete"
}

// Event is passed to a task's Handler.
type Event struct {
	Kind EventKind
	Name string
	Err  error
}

// Handler receives the events of one task. The return value matters only
// for BeforeSubmit: false skips the task, and no AfterComplete follows.
type Handler func(Event) bool

type job struct {
	name    string
	task    Task
	handler Handler
	skipped bool
	err     error
}

type stage struct {
	jobs     []*job
	launched bool
	done     chan struct{}
}

// Queue is a staged task queue. Push, Barrier, Pending and Close are safe
// from any goroutine; callbacks run inside Poll, which must not be called
// from a callback.
type Queue struct {
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stages  []*stage
	sealed  bool
	pending int

	poll   sync.Mutex
	closed atomic.Bool
}

// NewQueue returns an empty queue.
func NewQueue(opts ...Option) *Queue {
	o := gatherOptions(opts...)
	ctx, cancel := context.WithCancel(o.ctx)

	return &Queue{opts: o, ctx: ctx, cancel: cancel}
}

// Push appends a task to the current stage. h may be nil.
func (q *Queue) Push(name string, task Task, h Handler) error {
	if task == nil {
		return fmt.Errorf("push %q: %w", name, ErrNilTask)
	}
	if q.closed.Load() {
		return fmt.Errorf("push %q: %w", name, ErrClosed)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.stages) == 0 || q.sealed {
		q.stages = append(q.stages, &stage{done: make(chan struct{})})
		q.sealed = false
	}
	last := q.stages[len(q.stages)-1]
	last.jobs = append(last.jobs, &job{name: name, task: task, handler: h})
	q.pending++

	return nil
}

// Barrier ends the current stage. Tasks pushed afterwards start only after
// it completed and its callbacks ran. A Barrier on an empty queue, or
// directly after another Barrier, has no effect.
func (q *Queue) Barrier() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.stages) > 0 {
		q.sealed = true
	}
}

// Pending returns the number of pushed tasks whose callbacks have not all
// been delivered yet.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pending
}

// Poll delivers ready events and launches the next stage. It never blocks
// on running tasks and returns the number of events delivered.
func (q *Queue) Poll() int {
	q.poll.Lock()
	defer q.poll.Unlock()

	delivered := 0
	for {
		q.mu.Lock()
		if len(q.stages) == 0 {
			q.mu.Unlock()
			return delivered
		}
		st := q.stages[0]
		if !st.launched {
			st.launched = true
			if len(q.stages) == 1 {
				q.sealed = true
			}
			jobs := st.jobs
			q.mu.Unlock()

			delivered += q.launch(st, jobs)

			return delivered
		}
		select {
		case <-st.done:
		default:
			q.mu.Unlock()
			return delivered
		}
		q.stages = q.stages[1:]
		q.mu.Unlock()

		for _, j := range st.jobs {
			if j.skipped {
				continue
			}
			if j.err != nil {
				conformal.Logger().Warn("pipeline: task failed", "task", j.name, "err", j.err)
			}
			if j.handler != nil {
				j.handler(Event{Kind: AfterComplete, Name: j.name, Err: j.err})
				delivered++
			}
		}

		q.mu.Lock()
		q.pending = max(0, q.pending-len(st.jobs))
		q.mu.Unlock()
	}
}

// launch runs BeforeSubmit callbacks and starts the stage's tasks.
func (q *Queue) launch(st *stage, jobs []*job) int {
	delivered := 0
	run := make([]*job, 0, len(jobs))
	for _, j := range jobs {
		if j.handler != nil {
			delivered++
			if !j.handler(Event{Kind: BeforeSubmit, Name: j.name}) {
				j.skipped = true
				continue
			}
		}
		run = append(run, j)
	}
	conformal.Logger().Debug("pipeline: stage launched", "tasks", len(run), "skipped", len(jobs)-len(run))

	go func() {
		var g errgroup.Group
		g.SetLimit(q.opts.workers)
		for _, j := range run {
			g.Go(func() error {
				j.err = q.run(j)
				return nil
			})
		}
		_ = g.Wait()
		close(st.done)
	}()

	return delivered
}

func (q *Queue) run(j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %q: %v: %w", j.name, r, ErrTaskPanic)
		}
	}()

	return j.task(q.ctx)
}

// Flush polls until the queue is empty or ctx is done.
func (q *Queue) Flush(ctx context.Context) error {
	for {
		q.Poll()
		q.mu.Lock()
		if len(q.stages) == 0 {
			q.mu.Unlock()
			return nil
		}
		head := q.stages[0]
		q.mu.Unlock()

		select {
		case <-head.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops accepting tasks, cancels the task context, drops stages that
// have not launched and waits for the running one. A Poll that is already
// delivering callbacks finishes its current stage first; once Close returns
// no further callbacks are delivered. Close must not be called from a
// Handler.
func (q *Queue) Close() {
	if q.closed.Swap(true) {
		return
	}
	q.cancel()

	q.mu.Lock()
	var running *stage
	if len(q.stages) > 0 && q.stages[0].launched {
		running = q.stages[0]
	}
	q.stages = nil
	q.pending = 0
	q.mu.Unlock()

	// wait out a Poll in progress; later ones find no stages
	q.poll.Lock()
	defer q.poll.Unlock()

	if running != nil {
		<-running.done
	}
}
