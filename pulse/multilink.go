package pulse

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Multilink observes an ordered list of dependencies and invokes one
// callback whenever any of them changes. The callback reads current values
// at invocation time, so it can never observe a stale dependency. Whether
// several same-transaction changes coalesce into one invocation is the
// caller's business: batch them with the deferred lifecycle and the
// combinator fires once per settled state.
type Multilink struct {
	deps      []Dependency
	unwatches []func()
	callback  func()
	disposed  bool
}

// NewMultilink attaches to deps and invokes callback once immediately.
func NewMultilink(deps []Dependency, callback func()) *Multilink {
	return newMultilink(deps, callback, true)
}

// NewLazyMultilink attaches to deps without the immediate invocation.
func NewLazyMultilink(deps []Dependency, callback func()) *Multilink {
	return newMultilink(deps, callback, false)
}

func newMultilink(deps []Dependency, callback func(), eager bool) *Multilink {
	assertf(len(deps) >= 1, "multilink needs at least one dependency")
	assertf(callback != nil, "nil multilink callback")
	if assertionsEnabled {
		seen := mapset.NewThreadUnsafeSet[Dependency]()
		for _, d := range deps {
			assertf(d != nil, "nil multilink dependency")
			assertf(seen.Add(d), "duplicate multilink dependency")
		}
	}

	m := &Multilink{
		deps:      append([]Dependency(nil), deps...),
		unwatches: make([]func(), 0, len(deps)),
		callback:  callback,
	}
	for _, d := range m.deps {
		m.unwatches = append(m.unwatches, d.watch(m.invoke))
	}
	if eager {
		callback()
	}
	return m
}

func (m *Multilink) invoke() {
	if m.disposed {
		return
	}
	m.callback()
}

// Dispose symmetrically removes every per-dependency listener and clears the
// dependency list. Disposing twice is an assertion failure.
func (m *Multilink) Dispose() {
	assertf(!m.disposed, "multilink already disposed")
	m.disposed = true
	for _, unwatch := range m.unwatches {
		unwatch()
	}
	m.unwatches = nil
	m.deps = nil
	m.callback = nil
}

func (m *Multilink) IsDisposed() bool {
	return m.disposed
}

// Unmultilink is the teardown mirror of the multilink constructors.
func Unmultilink(m *Multilink) {
	m.Dispose()
}
