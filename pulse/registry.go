package pulse

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// RegistryKey is a strongly-typed composite key built from dotted name
// parts. The xxhash of the joined name is precomputed so map operations on
// hot instrumentation paths never re-hash long names.
type RegistryKey struct {
	Hash uint64
	Name string
}

func NewRegistryKey(parts ...string) RegistryKey {
	assertf(len(parts) >= 1, "registry key needs at least one part")
	name := strings.Join(parts, ".")
	return RegistryKey{
		Hash: xxhash.Sum64String(name),
		Name: name,
	}
}

type registryEntry struct {
	target Stateful
	refs   int
}

// Registry is the explicit replacement for ambient global caches: an
// insert/evict/refcount map from composite keys to instrumented holders,
// with a defined lifetime chosen by whoever constructs it.
type Registry struct {
	entries map[RegistryKey]*registryEntry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: map[RegistryKey]*registryEntry{},
	}
}

// DefaultRegistry is the documented process-wide instance, for callers that
// want one shared namespace of instrumented holders.
var DefaultRegistry = NewRegistry()

// Insert registers target under key with a reference count of one.
// Inserting a key twice is an assertion failure; Retain existing entries
// instead.
func (r *Registry) Insert(key RegistryKey, target Stateful) {
	assertf(target != nil, "nil registry target")
	_, exists := r.entries[key]
	assertf(!exists, "registry key %q already present", key.Name)
	r.entries[key] = &registryEntry{target: target, refs: 1}
}

func (r *Registry) Lookup(key RegistryKey) (Stateful, bool) {
	entry, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return entry.target, true
}

// Retain bumps the reference count of an existing entry.
func (r *Registry) Retain(key RegistryKey) {
	entry, ok := r.entries[key]
	assertf(ok, "retain of unknown registry key %q", key.Name)
	if ok {
		entry.refs++
	}
}

// Release drops one reference and evicts the entry when none remain.
func (r *Registry) Release(key RegistryKey) {
	entry, ok := r.entries[key]
	assertf(ok, "release of unknown registry key %q", key.Name)
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(r.entries, key)
	}
}

// Evict removes the entry regardless of its reference count.
func (r *Registry) Evict(key RegistryKey) {
	delete(r.entries, key)
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Register inserts p into r under its configured state key.
func Register[T any](r *Registry, p *Property[T]) RegistryKey {
	assertf(p.StateKey() != "", "property has no state key, use WithStateKey")
	key := NewRegistryKey(p.StateKey())
	r.Insert(key, p)
	return key
}
