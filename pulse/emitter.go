package pulse

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Listener is a callback registered with an Emitter. Listeners are
// registered by pointer so the same closure can be removed again later;
// registering the same pointer twice is an assertion failure.
type Listener[T any] func(T)

// emitContext is one frame of an in-progress Emit. Frames stack up under
// re-entrant emits. snapshot stays nil until the listener set is mutated
// while this frame is live, at which point iteration continues over the
// frozen copy from the current cursor.
type emitContext[T any] struct {
	index    int
	snapshot []*Listener[T]
}

// Emitter invokes every listener registered at dispatch start exactly once,
// in registration order, no matter what the listeners do to the listener set
// while the dispatch is running.
type Emitter[T any] struct {
	listeners []*Listener[T]
	members   mapset.Set[*Listener[T]]
	stack     []emitContext[T]
	disposed  bool
}

func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{
		members: mapset.NewThreadUnsafeSet[*Listener[T]](),
	}
}

func (e *Emitter[T]) AddListener(l *Listener[T]) {
	assertf(!e.disposed, "add listener on disposed emitter")
	assertf(l != nil, "nil listener")
	assertf(!e.members.Contains(l), "listener already registered")
	e.guard()
	e.listeners = append(e.listeners, l)
	e.members.Add(l)
}

// RemoveListener unregisters l. Removing a listener that was never registered
// is an assertion failure, except on a disposed emitter where it is tolerated
// so teardown order does not matter.
func (e *Emitter[T]) RemoveListener(l *Listener[T]) {
	if e.disposed {
		return
	}
	assertf(e.members.Contains(l), "removing unregistered listener")
	e.guard()
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			break
		}
	}
	e.members.Remove(l)
}

func (e *Emitter[T]) RemoveAllListeners() {
	if e.disposed {
		return
	}
	e.guard()
	e.listeners = nil
	e.members.Clear()
}

func (e *Emitter[T]) HasListener(l *Listener[T]) bool {
	return e.members.Contains(l)
}

func (e *Emitter[T]) HasListeners() bool {
	return len(e.listeners) > 0
}

func (e *Emitter[T]) ListenerCount() int {
	return len(e.listeners)
}

// guard freezes the in-progress frames before a mutation of the live listener
// set. Walks the frame stack top-down and stops at the first frame that
// already holds a snapshot: everything below it was frozen by an earlier
// mutation and must not be touched again.
func (e *Emitter[T]) guard() {
	for i := len(e.stack) - 1; i >= 0; i-- {
		ctx := &e.stack[i]
		if ctx.snapshot != nil {
			break
		}
		ctx.snapshot = append(make([]*Listener[T], 0, len(e.listeners)), e.listeners...)
	}
}

// Emit synchronously invokes every listener registered at this moment with v.
// Listeners added during the emit are not invoked by it; listeners removed
// during the emit are not invoked after their removal.
func (e *Emitter[T]) Emit(v T) {
	assertf(!e.disposed, "emit on disposed emitter")

	frame := len(e.stack)
	e.stack = append(e.stack, emitContext[T]{})

	for {
		// Re-fetch the frame each pass: nested emits may grow the stack and
		// relocate its backing array.
		ctx := &e.stack[frame]
		live := ctx.snapshot == nil
		ls := ctx.snapshot
		if live {
			ls = e.listeners
		}
		if ctx.index >= len(ls) {
			break
		}
		l := ls[ctx.index]
		ctx.index++
		if live || e.disposed || e.members.Contains(l) {
			(*l)(v)
		}
	}

	e.stack[frame].snapshot = nil
	e.stack = e.stack[:frame]
}

// Dispose removes every listener and marks the emitter unusable. In-progress
// emits keep their captured snapshots and run to completion, but nothing can
// be registered or emitted afterwards. Disposing twice is an assertion
// failure.
func (e *Emitter[T]) Dispose() {
	assertf(!e.disposed, "emitter already disposed")
	e.guard()
	e.disposed = true
	e.listeners = nil
	e.members.Clear()
}

func (e *Emitter[T]) IsDisposed() bool {
	return e.disposed
}
