// SPDX-License-Identifier: MIT

package scm

import (
	"math"

	"github.com/katalvlaran/conformal/linalg"
	"github.com/katalvlaran/conformal/operator"
)

// Selection picks the layout among the computed eigenpairs.
type Selection uint8

const (
	// SelectIndex takes pair index 2, the first one after the deflated
	// translations.
	SelectIndex Selection = iota

	// SelectAboveThreshold takes the first pair whose eigenvalue exceeds
	// the zero threshold. On a developable surface the conformal modes have
	// eigenvalue zero too, so this rule skips them; use it only for curved
	// input where a near-zero spurious mode is suspected.
	SelectAboveThreshold
)

func (s Selection) String() string {
	switch s {
	case SelectIndex:
		return "Index"
	case SelectAboveThreshold:
		return "AboveThreshold"
	default:
		return "Selection(?)"
	}
}

// Defaults.
const (
	// TrivialPairs is the number of translation modes returned ahead of the
	// layout.
	TrivialPairs = 2

	// DefaultPairs is the number of eigenpairs requested.
	DefaultPairs = TrivialPairs + 1

	// DefaultZeroThreshold scales ‖Lc‖∞/‖B‖∞ to the cut-off used by
	// SelectAboveThreshold.
	DefaultZeroThreshold = 1e-8

	// DefaultTolerance is the eigen residual tolerance forwarded to linalg.
	DefaultTolerance = 1e-9
)

const (
	panicPairsInvalid     = "scm: WithPairs: k must be >= 3"
	panicThresholdInvalid = "scm: WithZeroThreshold: value must be finite and >= 0"
	panicSelectionUnknown = "scm: WithSelection: unknown selection"
)

// Option configures a Solver.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	selection Selection
	pairs     int
	zeroTol   float64
	operator  []operator.Option
	eigen     []linalg.Option
}

func defaultOptions() Options {
	return Options{
		selection: SelectIndex,
		pairs:     DefaultPairs,
		zeroTol:   DefaultZeroThreshold,
	}
}

// WithSelection sets the eigenpair selection rule.
func WithSelection(sel Selection) Option {
	if sel > SelectAboveThreshold {
		panic(panicSelectionUnknown)
	}

	return func(o *Options) { o.selection = sel }
}

// WithPairs sets how many eigenpairs are computed, translations included.
func WithPairs(k int) Option {
	if k < DefaultPairs {
		panic(panicPairsInvalid)
	}

	return func(o *Options) { o.pairs = k }
}

// WithZeroThreshold sets the relative cut-off for SelectAboveThreshold.
func WithZeroThreshold(rel float64) Option {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.zeroTol = rel }
}

// WithOperatorOptions forwards options to operator assembly.
func WithOperatorOptions(opts ...operator.Option) Option {
	return func(o *Options) { o.operator = append(o.operator, opts...) }
}

// WithEigenOptions forwards options to linalg.SolveShiftInvert. They are
// applied after the package defaults.
func WithEigenOptions(opts ...linalg.Option) Option {
	return func(o *Options) { o.eigen = append(o.eigen, opts...) }
}
