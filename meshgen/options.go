// SPDX-License-Identifier: MIT
// Package: meshgen
//
// options.go — functional options shared by the procedural builders.
// Constructors validate and panic on meaningless inputs; builders never panic.

package meshgen

import (
	"math"
	"math/rand"
)

// Defaults.
const (
	// DefaultSize is the side length of Grid along X and Y.
	DefaultSize = 2.0

	// DefaultRadius is the outer radius of Disk and Hemisphere.
	DefaultRadius = 1.0

	// DefaultSeed seeds jitter.
	DefaultSeed int64 = 1

	// DefaultWeldTolerance is the grid step used to merge vertices in FromSDF.
	DefaultWeldTolerance = 1e-9
)

const (
	panicSizeInvalid   = "meshgen: WithSize: sides must be finite and > 0"
	panicRadiusInvalid = "meshgen: WithRadius: radius must be finite and > 0"
	panicJitterInvalid = "meshgen: WithJitter: amount must be in [0, 0.5)"
	panicHeightNil     = "meshgen: WithHeight: fn must be non-nil"
	panicWeldInvalid   = "meshgen: WithWeldTolerance: tol must be finite and > 0"
)

// Option customises a builder.
type Option func(*config)

type config struct {
	sizeX, sizeY float64
	radius       float64
	height       func(x, y float64) float64
	jitter       float64
	seed         int64
	weldTol      float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		sizeX:   DefaultSize,
		sizeY:   DefaultSize,
		radius:  DefaultRadius,
		seed:    DefaultSeed,
		weldTol: DefaultWeldTolerance,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}

	return cfg
}

// WithSize sets the Grid extent. The sheet is centred on the origin.
func WithSize(x, y float64) Option {
	if !(x > 0) || !(y > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic(panicSizeInvalid)
	}

	return func(c *config) { c.sizeX, c.sizeY = x, y }
}

// WithRadius sets the Disk / Hemisphere radius.
func WithRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(panicRadiusInvalid)
	}

	return func(c *config) { c.radius = r }
}

// WithHeight displaces Grid and Disk vertices along Z by fn(x, y).
func WithHeight(fn func(x, y float64) float64) Option {
	if fn == nil {
		panic(panicHeightNil)
	}

	return func(c *config) { c.height = fn }
}

// WithJitter moves interior Grid vertices by up to amount·cell in X and Y.
// Boundary vertices stay put, so the outline is unchanged.
func WithJitter(amount float64) Option {
	if math.IsNaN(amount) || amount < 0 || amount >= 0.5 {
		panic(panicJitterInvalid)
	}

	return func(c *config) { c.jitter = amount }
}

// WithSeed seeds the jitter source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeldTolerance sets the vertex merge step used by FromSDF.
func WithWeldTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicWeldInvalid)
	}

	return func(c *config) { c.weldTol = tol }
}

func (c config) rng() *rand.Rand { return rand.New(rand.NewSource(c.seed)) }
