// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory constructs an uncreated Surface. It must not acquire display
// resources; that happens in Surface.Create.
type Factory func() (Surface, error)

// RegistryEntry represents a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Windowed backends use 100, the headless image backend 10.
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface backends.
//
// Backends register themselves from init, so importing a backend package
// for side effects is enough to make it selectable by name:
//
//	import _ "github.com/gogpu/particles/backend/ebiten"
//
//	s, err := surface.NewSurfaceByName("ebiten")
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface constructs a surface from the best available backend.
func NewSurface() (Surface, error) {
	return globalRegistry.NewSurface()
}

// NewSurfaceByName constructs a surface from a specific named backend.
func NewSurfaceByName(name string) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
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

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry for a specific backend.
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

// NewSurface constructs a surface using the best available backend.
func (r *Registry) NewSurface() (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	var lastErr error
	for _, name := range available {
		s, err := r.NewSurfaceByName(name)
		if err == nil {
			return s, nil
		}
		Logger().Warn("surface: backend rejected", "backend", name, "err", err)
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewSurfaceByName constructs a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory()
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
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

// ErrNoBackendAvailable is returned when no surface backends are registered
// or available on the current system.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but cannot run here.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register(ImageBackend, 10, func() (Surface, error) {
		return NewImageSurface(), nil
	}, nil)
}
