// SPDX-License-Identifier: MIT

package asset

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/conformal"
	"github.com/katalvlaran/conformal/mesh"
)

// Handle names a registered mesh.
type Handle string

// Source describes how to obtain a mesh.
type Source struct {
	// Title is a display name; the handle is used when empty.
	Title string
	// Load builds or reads the mesh. It may be called again after Release.
	Load func() (*mesh.Mesh, error)
	// RefVerts is the normalisation pair for this mesh.
	RefVerts [2]int
}

// Asset is a loaded mesh with derived data. It is shared between callers
// and must be treated as read-only.
type Asset struct {
	Handle   Handle
	Title    string
	Mesh     *mesh.Mesh
	RefVerts [2]int
	Center   r3.Vec
	Radius   float64
	Normals  []r3.Vec
}

// Stats counts cache activity.
type Stats struct {
	Hits, Misses, Loads uint64
}

// Registry maps handles to sources and caches loaded assets. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[Handle]Source
	cache   map[Handle]*Asset
	group   singleflight.Group
	// gens is bumped by Release; epoch by Purge. A load only fills the cache
	// if neither moved while it ran.
	gens  map[Handle]uint64
	epoch uint64

	hits, misses, loads atomic.Uint64
}

// NewRegistry returns a registry holding the given sources.
func NewRegistry(sources map[Handle]Source) (*Registry, error) {
	r := &Registry{
		sources: make(map[Handle]Source, len(sources)),
		cache:   make(map[Handle]*Asset),
		gens:    make(map[Handle]uint64),
	}
	for h, src := range sources {
		if err := r.Register(h, src); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds a source.
func (r *Registry) Register(h Handle, src Source) error {
	if src.Load == nil {
		return assetErrorf(opRegister, h, ErrNilLoader)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sources[h]; ok {
		return assetErrorf(opRegister, h, ErrDuplicate)
	}
	r.sources[h] = src

	return nil
}

// Handles lists registered handles in sorted order.
func (r *Registry) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handle, 0, len(r.sources))
	for h := range r.sources {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Source returns the registered source for h.
func (r *Registry) Source(h Handle) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.sources[h]

	return src, ok
}

// Get returns the cached asset for h, loading it on a miss.
func (r *Registry) Get(h Handle) (*Asset, error) {
	r.mu.RLock()
	a, ok := r.cache[h]
	src, known := r.sources[h]
	r.mu.RUnlock()
	if ok {
		r.hits.Add(1)
		return a, nil
	}
	if !known {
		return nil, assetErrorf(opGet, h, ErrUnknownHandle)
	}
	r.misses.Add(1)

	v, err, _ := r.group.Do(string(h), func() (any, error) {
		r.mu.RLock()
		cached, ok := r.cache[h]
		gen, epoch := r.gens[h], r.epoch
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}
		a, err := r.load(h, src)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.gens[h] == gen && r.epoch == epoch {
			r.cache[h] = a
		}
		r.mu.Unlock()

		return a, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Asset), nil
}

// Reload drops any cached copy of h and loads it again.
func (r *Registry) Reload(h Handle) (*Asset, error) {
	r.Release(h)

	return r.Get(h)
}

// Release drops the cached asset for h. Callers holding it keep a valid
// copy. A load of h already running when Release is called still returns
// to its callers but is not cached, and later Gets start a new load.
func (r *Registry) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, h)
	r.gens[h]++
	r.group.Forget(string(h))
}

// Purge drops every cached asset, with the same rule for running loads as
// Release.
func (r *Registry) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.cache)
	r.epoch++
	for h := range r.sources {
		r.group.Forget(string(h))
	}
}

// Cached reports whether h is currently loaded.
func (r *Registry) Cached(h Handle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cache[h]

	return ok
}

// Stats returns cache counters.
func (r *Registry) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load(), Loads: r.loads.Load()}
}

func (r *Registry) load(h Handle, src Source) (*Asset, error) {
	r.loads.Add(1)
	m, err := src.Load()
	if err != nil {
		return nil, assetErrorf(opGet, h, err)
	}
	if err = m.Validate(); err != nil {
		return nil, assetErrorf(opGet, h, err)
	}
	n := m.VertexCount()
	ref := src.RefVerts
	if ref[0] < 0 || ref[0] >= n || ref[1] < 0 || ref[1] >= n || ref[0] == ref[1] {
		return nil, assetErrorf(opGet, h, fmt.Errorf("%v with %d vertices: %w", ref, n, ErrBadReference))
	}

	center, radius := m.Bounds()
	title := src.Title
	if title == "" {
		title = string(h)
	}
	conformal.Logger().Debug("asset: loaded", "handle", string(h), "vertices", n, "faces", m.FaceCount())

	return &Asset{
		Handle:   h,
		Title:    title,
		Mesh:     m,
		RefVerts: ref,
		Center:   center,
		Radius:   radius,
		Normals:  m.VertexNormals(),
	}, nil
}
