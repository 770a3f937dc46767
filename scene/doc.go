// SPDX-License-Identifier: MIT

// Package scene sequences mesh and method changes of an interactive viewer
// through a pipeline.Queue.
//
// Selecting a mesh schedules three stages separated by barriers:
//
//	load (asset.Registry) │ extract boundary │ solve (texcoord.Engine)
//
// Selecting a method schedules only the solve. Inputs are read from the
// session when a stage is submitted and outputs are applied when it
// completes, both on the goroutine calling Update or Wait. A newer mesh
// selection makes in-flight results stale; they are dropped on arrival.
//
// A failed stage leaves the last good coordinates in place and reports
// texcoord.StatusSolveFailed together with the error.
package scene
