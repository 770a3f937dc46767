// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrClosed is returned by Push after Close.
	ErrClosed = errors.New("pipeline: queue closed")

	// ErrNilTask is returned by Push for a nil Task.
	ErrNilTask = errors.New("pipeline: nil task")

	// ErrTaskPanic is reported through AfterComplete when a task panicked.
	ErrTaskPanic = errors.New("pipeline: task panicked")
)
