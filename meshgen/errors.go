// SPDX-License-Identifier: MIT
// Package: meshgen
//
// errors.go — sentinel errors. Implementations attach context with %w;
// callers branch with errors.Is.

package meshgen

import (
	"errors"
	"fmt"
)

// ErrTooFewSegments indicates a size parameter below the constructor minimum.
var ErrTooFewSegments = errors.New("meshgen: parameter too small")

// ErrUnknownSolid indicates an unsupported PlatonicName.
var ErrUnknownSolid = errors.New("meshgen: unknown platonic solid")

// ErrEmptyResult indicates a construction that produced no faces.
var ErrEmptyResult = errors.New("meshgen: no faces produced")

const (
	methodGrid       = "Grid"
	methodDisk       = "Disk"
	methodHemisphere = "Hemisphere"
	methodPlatonic   = "Platonic"
	methodFromSDF    = "FromSDF"
	methodClip       = "Clip"
	methodTransform  = "Transform"
)

func meshgenErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
