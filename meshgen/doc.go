// SPDX-License-Identifier: MIT

// Package meshgen builds procedural triangle meshes with known topology and
// predictable vertex ids, for fixtures, demos and the built-in asset catalogue.
//
//   - Grid:       flat (or height-displaced) rectangular sheet, one boundary loop.
//   - Disk:       hub + concentric rings (a wheel refined radially).
//   - Hemisphere: the Disk topology lifted onto the unit upper hemisphere.
//   - Platonic:   closed solids, no boundary.
//   - FromSDF:    marching-cubes surface of an sdfx signed distance field,
//     with coincident vertices welded.
//   - Clip, Transform: derive new meshes from existing ones.
//
// Faces are wound counter-clockwise when seen from the outside (from +Z for
// flat meshes). Option constructors panic on nonsensical values; builders
// return sentinel errors for bad sizes.
package meshgen
