// SPDX-License-Identifier: MIT

// Package asset is a registry of named mesh sources with a load cache.
//
// Each Source pairs a loader with the reference vertex pair used to
// normalise layouts of that mesh. Get loads on first use, derives bounds and
// vertex normals, and caches the Asset until Release or Purge. Concurrent
// Gets of the same handle share one load.
//
// DefaultCatalog lists procedural meshes with disk topology and precomputed
// reference pairs.
package asset
