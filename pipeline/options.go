// SPDX-License-Identifier: MIT

package pipeline

import "context"

// DefaultWorkers is the number of tasks of one stage run at once.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "pipeline: WithWorkers: n must be >= 1"
	panicContextNil     = "pipeline: WithContext: ctx must be non-nil"
)

// Option configures a Queue.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	workers int
	ctx     context.Context
}

// WithWorkers sets the concurrency limit within a stage.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithContext sets the parent of the context passed to tasks.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, ctx: context.Background()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
