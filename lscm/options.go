// SPDX-License-Identifier: MIT

package lscm

import (
	"github.com/katalvlaran/conformal/linalg"
	"github.com/katalvlaran/conformal/operator"
)

// Option configures a Solver.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	operator []operator.Option
	factor   []linalg.Option
}

// WithOperatorOptions forwards options to operator assembly.
func WithOperatorOptions(opts ...operator.Option) Option {
	return func(o *Options) { o.operator = append(o.operator, opts...) }
}

// WithFactorOptions forwards options to the sparse factorisation.
func WithFactorOptions(opts ...linalg.Option) Option {
	return func(o *Options) { o.factor = append(o.factor, opts...) }
}
