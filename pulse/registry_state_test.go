package pulse_test

import (
	"testing"

	"github.com/delaneyj/pulseparty/pulse"
	"github.com/stretchr/testify/assert"
)

// keys built from the same parts are interchangeable map keys
func TestRegistryKey(t *testing.T) {
	a := pulse.NewRegistryKey("sim", "model", "mass")
	b := pulse.NewRegistryKey("sim.model.mass")
	assert.Equal(t, a, b)
	assert.Equal(t, "sim.model.mass", a.Name)
	assert.NotZero(t, a.Hash)

	other := pulse.NewRegistryKey("sim", "model", "velocity")
	assert.NotEqual(t, a, other)

	assert.Panics(t, func() { pulse.NewRegistryKey() })
}

// insert, lookup and evict form the basic lifecycle
func TestRegistryInsertLookupEvict(t *testing.T) {
	r := pulse.NewRegistry()
	key := pulse.NewRegistryKey("a")
	p := pulse.NewProperty(1, pulse.WithStateKey[int]("a"))

	_, ok := r.Lookup(key)
	assert.False(t, ok)

	r.Insert(key, p)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Lookup(key)
	assert.True(t, ok)
	assert.Same(t, pulse.Stateful(p), got)

	assert.Panics(t, func() { r.Insert(key, p) })

	r.Evict(key)
	assert.Equal(t, 0, r.Len())
	_, ok = r.Lookup(key)
	assert.False(t, ok)
}

// retain and release refcount the entry, evicting at zero
func TestRegistryRetainRelease(t *testing.T) {
	r := pulse.NewRegistry()
	key := pulse.NewRegistryKey("shared")
	p := pulse.NewProperty(1, pulse.WithStateKey[int]("shared"))
	r.Insert(key, p)

	r.Retain(key)
	r.Release(key)
	assert.Equal(t, 1, r.Len())

	r.Release(key)
	assert.Equal(t, 0, r.Len())

	assert.Panics(t, func() { r.Retain(key) })
	assert.Panics(t, func() { r.Release(key) })
}

// register derives the key from the holder's own state key
func TestRegistryRegister(t *testing.T) {
	r := pulse.NewRegistry()
	p := pulse.NewProperty(2, pulse.WithStateKey[int]("scene.zoom"))

	key := pulse.Register(r, p)
	assert.Equal(t, "scene.zoom", key.Name)

	got, ok := r.Lookup(key)
	assert.True(t, ok)
	assert.Same(t, pulse.Stateful(p), got)

	bare := pulse.NewProperty(0)
	assert.Panics(t, func() { pulse.Register(r, bare) })
}

// captureStates snapshots every registered holder by name
func TestCaptureStates(t *testing.T) {
	r := pulse.NewRegistry()
	mass := pulse.NewProperty(5.0, pulse.WithStateKey[float64]("model.mass"))
	label := pulse.NewProperty("idle", pulse.WithStateKey[string]("model.label"))
	pulse.Register(r, mass)
	pulse.Register(r, label)

	states := pulse.CaptureStates(r)
	assert.Equal(t, map[string]any{
		"model.mass":  5.0,
		"model.label": "idle",
	}, states)
}

// applyStates commits the whole batch before any listener fires
func TestApplyStatesCoordinated(t *testing.T) {
	r := pulse.NewRegistry()
	a := pulse.NewProperty(1, pulse.WithStateKey[int]("batch.a"))
	b := pulse.NewProperty(2, pulse.WithStateKey[int]("batch.b"))
	pulse.Register(r, a)
	pulse.Register(r, b)

	observed := [][2]int{}
	record := changeListener(func(pulse.Transition[int]) {
		observed = append(observed, [2]int{a.Get(), b.Get()})
	})
	a.LazyLink(record)
	b.LazyLink(record)

	pulse.ApplyStates(r, map[string]any{
		"batch.a": 10,
		"batch.b": 20,
	})

	assert.Equal(t, 10, a.Get())
	assert.Equal(t, 20, b.Get())
	// every observation saw the fully applied batch
	assert.Equal(t, [][2]int{{10, 20}, {10, 20}}, observed)
}

// applying a value equal to the current one stays silent
func TestApplyStatesNoChange(t *testing.T) {
	r := pulse.NewRegistry()
	a := pulse.NewProperty(1, pulse.WithStateKey[int]("quiet.a"))
	pulse.Register(r, a)

	calls := 0
	a.LazyLink(changeListener(func(pulse.Transition[int]) { calls++ }))

	pulse.ApplyStates(r, map[string]any{"quiet.a": 1})
	assert.Equal(t, 0, calls)
}

// unknown keys in a batch are a usage error
func TestApplyStatesUnknownKey(t *testing.T) {
	r := pulse.NewRegistry()
	assert.Panics(t, func() {
		pulse.ApplyStates(r, map[string]any{"missing": 1})
	})
}

// capture then apply restores a registry to an earlier state
func TestStateRoundTrip(t *testing.T) {
	r := pulse.NewRegistry()
	count := pulse.NewProperty(3, pulse.WithStateKey[int]("rt.count"))
	name := pulse.NewProperty("before", pulse.WithStateKey[string]("rt.name"))
	pulse.Register(r, count)
	pulse.Register(r, name)

	saved := pulse.CaptureStates(r)

	count.Set(99)
	name.Set("after")

	pulse.ApplyStates(r, saved)
	assert.Equal(t, 3, count.Get())
	assert.Equal(t, "before", name.Get())
}
