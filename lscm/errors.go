// SPDX-License-Identifier: MIT

package lscm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/conformal"
)

var (
	// ErrCoincidentPins is returned when both pinned ids are equal.
	ErrCoincidentPins = errors.New("lscm: pinned vertices coincide")

	// ErrPinOutOfRange is returned for a pinned id outside [0,n).
	ErrPinOutOfRange = errors.New("lscm: pinned vertex out of range")

	// ErrDisconnected is returned when the mesh has more than one component
	// (unreferenced vertices count as components).
	ErrDisconnected = errors.New("lscm: mesh is not connected")

	// ErrSingular is returned when the reduced system cannot be factorised.
	ErrSingular = errors.New("lscm: reduced system is singular")

	// ErrBufferSize is returned when the result buffer length is not n.
	ErrBufferSize = errors.New("lscm: result buffer has wrong length")

	// ErrNonFinite is returned when the solve produced NaN or Inf.
	ErrNonFinite = errors.New("lscm: non-finite solution")
)

const (
	opInit   = "lscm.Init"
	opReinit = "lscm.Reinit"
	opSolve  = "lscm.Solve"
	opEnergy = "lscm.Energy"
)

// degenerate tags err with the shared taxonomy sentinel.
func degenerate(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, conformal.ErrDegenerateSystem, err)
}

func solveFailed(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, conformal.ErrSolveFailed, err)
}
