// SPDX-License-Identifier: MIT

package scm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/conformal"
)

var (
	// ErrNoBoundary is returned by Init for a closed mesh: B would be zero.
	ErrNoBoundary = errors.New("scm: mesh has no boundary")

	// ErrDisconnected is returned when the faces do not connect all vertices.
	ErrDisconnected = errors.New("scm: mesh is not connected")

	// ErrBufferSize is returned when the result buffer length is not n.
	ErrBufferSize = errors.New("scm: result buffer has wrong length")

	// ErrNoMode is returned when no computed eigenvalue passes the
	// selection rule.
	ErrNoMode = errors.New("scm: no eigenpair matches the selection")
)

const (
	opInit  = "scm.Init"
	opSolve = "scm.Solve"
)

func degenerate(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, conformal.ErrDegenerateSystem, err)
}

func solveFailed(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, conformal.ErrSolveFailed, err)
}
