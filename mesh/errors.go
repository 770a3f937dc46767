// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMesh is returned when a mesh has no vertices or no faces.
	ErrEmptyMesh = errors.New("mesh: empty mesh")

	// ErrVertexOutOfRange indicates a face referencing an id outside [0,n).
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrRepeatedVertex indicates a face using the same vertex twice.
	ErrRepeatedVertex = errors.New("mesh: face repeats a vertex")

	// ErrNonFinite indicates a NaN or Inf coordinate.
	ErrNonFinite = errors.New("mesh: non-finite position")

	// ErrNonManifoldEdge indicates an edge with more than two incident faces.
	ErrNonManifoldEdge = errors.New("mesh: edge shared by more than two faces")

	// ErrOpenLoop indicates boundary edges that do not close into loops.
	ErrOpenLoop = errors.New("mesh: boundary does not form closed loops")
)

// Operation tags.
const (
	opNew      = "New"
	opBoundary = "ExtractBoundary"
	opLoops    = "BoundaryLoops"
)

func meshErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
