package recording

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a backend with default options.
type BackendFactory func() Backend

// backendEntry is a registered backend. Aliases point at the entry of
// their canonical name.
type backendEntry struct {
	name    string
	factory BackendFactory
	aliases []string
}

var (
	registryMu sync.RWMutex
	backends   = make(map[string]*backendEntry)
)

// Register makes a backend available under name and any aliases, usually
// the file extensions it writes. Names are case-insensitive. Backend
// packages call it from init:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewBackend()
//	    }, "png", "jpg")
//	}
//
// Register panics if factory is nil or a name is already taken.
func Register(name string, factory BackendFactory, aliases ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	e := &backendEntry{name: normalize(name), factory: factory}
	for _, n := range append([]string{name}, aliases...) {
		key := normalize(n)
		if _, dup := backends[key]; dup || slices.Contains(e.aliases, key) {
			panic("recording: Register called twice for " + key)
		}
		if key != e.name {
			e.aliases = append(e.aliases, key)
		}
	}
	backends[e.name] = e
	for _, a := range e.aliases {
		backends[a] = e
	}
}

// Unregister removes a backend and its aliases. Unknown names and aliases
// are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	e, ok := backends[normalize(name)]
	if !ok || e.name != normalize(name) {
		return
	}
	delete(backends, e.name)
	for _, a := range e.aliases {
		delete(backends, a)
	}
}

// Resolve returns the canonical backend name for a name or alias.
func Resolve(name string) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := backends[normalize(name)]
	if !ok {
		return "", false
	}
	return e.name, true
}

// NewBackend creates a backend by name or alias. The error for an unknown
// name hints at a forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	e, ok := backends[normalize(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return e.factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the canonical backend names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var names []string
	for key, e := range backends {
		if key == e.name {
			names = append(names, key)
		}
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether name is a registered backend or alias.
func IsRegistered(name string) bool {
	_, ok := Resolve(name)
	return ok
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
