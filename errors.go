// SPDX-License-Identifier: MIT

package conformal

import "errors"

// Error taxonomy shared by every sub-package. Sub-packages wrap one of these
// together with their own specific sentinel, so callers can match either:
//
//	errors.Is(err, conformal.ErrDegenerateSystem)
//	errors.Is(err, lscm.ErrCoincidentPins)
var (
	// ErrTopology marks a non-manifold edge (more than two incident faces).
	ErrTopology = errors.New("conformal: non-manifold topology")

	// ErrDegenerateSystem marks an input that cannot produce a well-posed
	// system: coincident pins, disconnected meshes, degenerate faces, or a
	// factorisation failure during initialisation.
	ErrDegenerateSystem = errors.New("conformal: degenerate system")

	// ErrSolveFailed marks a factorisation or eigen solve that did not
	// produce a usable solution.
	ErrSolveFailed = errors.New("conformal: solve failed")

	// ErrNotInitialized is returned by Solve before a successful Init.
	ErrNotInitialized = errors.New("conformal: solver not initialized")
)
