// SPDX-License-Identifier: MIT

package operator

import "math"

// DefaultDegenerateSine is the smallest |sin θ| accepted for a corner angle.
const DefaultDegenerateSine = 1e-12

const panicSineInvalid = "operator: WithDegenerateSine: value must be finite and in [0,1)"

// Option configures assembly.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	minSine float64
}

// WithDegenerateSine sets the threshold below which a face is rejected.
// Panics for values outside [0,1).
func WithDegenerateSine(s float64) Option {
	if math.IsNaN(s) || s < 0 || s >= 1 {
		panic(panicSineInvalid)
	}

	return func(o *Options) { o.minSine = s }
}

func gatherOptions(opts ...Option) Options {
	o := Options{minSine: DefaultDegenerateSine}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
