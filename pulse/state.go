package pulse

import "sort"

// Stateful is the surface an external instrumentation layer uses to mirror a
// holder: read its value, write it back, and drive the two-phase commit so a
// coordinated batch of writes never exposes half-updated state.
type Stateful interface {
	Deferrable
	StateKey() string
	StateObject() any
	ApplyState(v any)
}

// CaptureStates snapshots the current value of every registered holder,
// keyed by name.
func CaptureStates(r *Registry) map[string]any {
	states := make(map[string]any, len(r.entries))
	for key, entry := range r.entries {
		states[key.Name] = entry.target.StateObject()
	}
	return states
}

// ApplyStates writes a batch of instrumentation-supplied values through the
// deferred lifecycle: every targeted holder is deferred, every value
// applied, every holder undeferred (values become readable), and only then
// do the coalesced notifications fire. Keys that resolve to nothing are an
// assertion failure. Holders are processed in sorted key order so replays
// are deterministic.
func ApplyStates(r *Registry, states map[string]any) {
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)

	type write struct {
		target Stateful
		value  any
	}
	writes := make([]write, 0, len(names))
	for _, name := range names {
		target, ok := r.Lookup(NewRegistryKey(name))
		assertf(ok, "apply states: unknown key %q", name)
		if ok {
			writes = append(writes, write{target: target, value: states[name]})
		}
	}

	for _, w := range writes {
		w.target.SetDeferred(true)
	}
	for _, w := range writes {
		w.target.ApplyState(w.value)
	}
	fires := make([]func(), 0, len(writes))
	for _, w := range writes {
		if fire := w.target.SetDeferred(false); fire != nil {
			fires = append(fires, fire)
		}
	}
	for _, fire := range fires {
		fire()
	}
}
