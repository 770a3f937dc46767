// SPDX-License-Identifier: MIT

// Package pipeline runs background tasks in stages separated by barriers,
// with event callbacks delivered on the goroutine that polls the queue.
//
// A typical loop pushes tasks from an interactive thread and calls Poll once
// per frame:
//
//	q := pipeline.NewQueue()
//	q.Push("load", load, onLoad)
//	q.Barrier()
//	q.Push("solve", solve, onSolve)
//	for q.Pending() > 0 {
//		q.Poll()
//		// draw
//	}
//
// Stage rules:
//   - Tasks pushed with no Barrier in between form one stage and may run
//     concurrently, up to the worker limit.
//   - A stage is launched by Poll only after every AfterComplete callback of
//     the previous stage has returned.
//   - BeforeSubmit callbacks run on the polling goroutine right before the
//     stage launches; returning false skips that task.
//   - AfterComplete callbacks run on the polling goroutine, in push order,
//     once every task of the stage has finished.
//   - Tasks pushed after their stage has launched start a new stage.
//
// A running task is never interrupted. Close cancels the context passed to
// tasks and waits for the running stage; results are discarded.
package pipeline
