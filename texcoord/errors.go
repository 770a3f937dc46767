// SPDX-License-Identifier: MIT

package texcoord

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod is returned for a Method outside the declared set.
	ErrUnknownMethod = errors.New("texcoord: unknown method")

	// ErrNilMesh is returned when a Request carries no mesh.
	ErrNilMesh = errors.New("texcoord: nil mesh")
)

const (
	opParse = "texcoord.ParseMethod"
	opSolve = "texcoord.Solve"
)

func texcoordErrorf(m Method, err error) error {
	return fmt.Errorf("%s(%s): %w", opSolve, m, err)
}
