// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateReference is returned when the reference points coincide
	// or are not finite.
	ErrDegenerateReference = errors.New("normalize: reference points coincide")

	// ErrPairOutOfRange is returned for a reference id outside the layout.
	ErrPairOutOfRange = errors.New("normalize: reference vertex out of range")
)

const (
	opFit       = "normalize.Fit"
	opCanonical = "normalize.Canonical"
)

func normalizeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
