// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for materialisation.
//
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions applying setters over the defaults.

package sparse

import "math"

const (
	// DefaultEpsilon is the tolerance used by ValidateSymmetric callers that
	// have no better scale, and by FromTriplets when dropping explicit zeros.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf rejects NaN/Inf values in FromTriplets.
	DefaultValidateNaNInf = true

	// DefaultDropZeros keeps explicit zero sums in the pattern.
	DefaultDropZeros = false
)

const (
	panicEpsilonInvalid = "sparse: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	eps            float64
	validateNaNInf bool
	dropZeros      bool
}

// WithEpsilon sets the tolerance used by WithDropZeros.
// Panics if eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf lets NaN/Inf values through FromTriplets.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDropZeros removes summed entries with |v| <= eps from the pattern.
func WithDropZeros() Option {
	return func(o *Options) { o.dropZeros = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		dropZeros:      DefaultDropZeros,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
