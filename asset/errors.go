// SPDX-License-Identifier: MIT

package asset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownHandle is returned for a handle that was never registered.
	ErrUnknownHandle = errors.New("asset: unknown handle")

	// ErrDuplicate is returned when registering a handle twice.
	ErrDuplicate = errors.New("asset: handle already registered")

	// ErrBadReference is returned when a reference pair is out of range or
	// repeats a vertex.
	ErrBadReference = errors.New("asset: bad reference pair")

	// ErrNilLoader is returned when registering a Source without Load.
	ErrNilLoader = errors.New("asset: nil loader")
)

const (
	opRegister = "asset.Register"
	opGet      = "asset.Get"
)

func assetErrorf(tag string, h Handle, err error) error {
	return fmt.Errorf("%s(%s): %w", tag, h, err)
}
