// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/block"
)

// BackendFactory creates the backend of a freshly initialized block.
// The block's Renderer and ZIndex are set when the factory runs.
type BackendFactory func(d *Display, b *block.Block) (block.Backend, error)

// RegistryEntry represents a registered block backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Renderers is the set of renderers the backend can paint.
	Renderers retained.Renderer

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates backend instances.
	Factory BackendFactory
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered block backends.
//
// Example registration:
//
//	func init() {
//	    display.RegisterBackend("canvas", retained.RendererCanvas, 10, canvasFactory)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via RegisterBackend.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// RegisterBackend adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func RegisterBackend(name string, renderers retained.Renderer, priority int, factory BackendFactory) {
	globalRegistry.Register(name, renderers, priority, factory)
}

// UnregisterBackend removes a backend from the global registry.
func UnregisterBackend(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns all globally registered backend names sorted by
// priority (highest first).
func Backends() []string {
	return globalRegistry.List()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, renderers retained.Renderer, priority int, factory BackendFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Renderers: renderers,
		Priority:  priority,
		Factory:   factory,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(0)
}

// Get returns a copy of the named entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// Factory returns the highest-priority factory able to paint renderer.
func (r *Registry) Factory(renderer retained.Renderer) (BackendFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.sortedNames(renderer)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoBackend, renderer)
	}
	return r.entries[names[0]].Factory, nil
}

// sortedNames returns backend names sorted by priority (highest first),
// then by name. A non-zero renderer filters to backends that support it.
// Must be called with lock held.
func (r *Registry) sortedNames(renderer retained.Renderer) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if renderer != 0 && e.Renderers&renderer == 0 {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Errors.
var (
	// ErrNoBackend is returned when no registered backend can paint a
	// block's renderer.
	ErrNoBackend = errors.New("display: no backend for renderer")
)

// init registers the built-in SVG backend.
func init() {
	RegisterBackend("svg", retained.RendererSVG, 10, newSVGBlock)
}
