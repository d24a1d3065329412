package pulse

// ForwardingProperty mirrors whichever target holder it currently points at.
// The target reference is a relation, not ownership: swapping targets moves
// one installed mirror listener symmetrically from the old target to the new
// one, so a replaced target never retains a stale listener.
type ForwardingProperty[T any] struct {
	tp      *TinyProperty[T]
	target  Source[T]
	unwatch func()

	writeThrough bool
}

// NewForwardingProperty mirrors target. With writeThrough, Set forwards to
// the target (which must be Settable) and the new value arrives back through
// the mirror; without it, Set is an assertion failure.
func NewForwardingProperty[T any](target Source[T], writeThrough bool, opts ...Option[T]) *ForwardingProperty[T] {
	assertf(target != nil, "nil forwarding target")
	f := &ForwardingProperty[T]{
		tp:           NewTinyProperty(target.Get(), opts...),
		writeThrough: writeThrough,
	}
	f.install(target)
	return f
}

func (f *ForwardingProperty[T]) install(target Source[T]) {
	f.target = target
	f.unwatch = target.watch(func() {
		f.tp.Set(f.target.Get())
	})
}

// SetTarget swaps the mirrored holder. The mirror listener is removed from
// the previous target, installed on the next one, and the current value
// resyncs immediately (notifying if it differs).
func (f *ForwardingProperty[T]) SetTarget(target Source[T]) {
	assertf(!f.tp.em.disposed, "setTarget on disposed property")
	assertf(target != nil, "nil forwarding target")
	f.unwatch()
	f.install(target)
	f.tp.Set(target.Get())
}

func (f *ForwardingProperty[T]) Target() Source[T] {
	return f.target
}

func (f *ForwardingProperty[T]) Get() T {
	return f.tp.Get()
}

func (f *ForwardingProperty[T]) Set(v T) {
	assertf(f.writeThrough, "forwarding property is read-only without write-through")
	if !f.writeThrough {
		return
	}
	settable, ok := f.target.(Settable[T])
	assertf(ok, "forwarding target %T is not settable", f.target)
	if ok {
		settable.Set(v)
	}
}

func (f *ForwardingProperty[T]) Link(l *ChangeListener[T]) {
	f.tp.Link(l)
}

func (f *ForwardingProperty[T]) LazyLink(l *ChangeListener[T]) {
	f.tp.LazyLink(l)
}

func (f *ForwardingProperty[T]) Unlink(l *ChangeListener[T]) {
	f.tp.Unlink(l)
}

func (f *ForwardingProperty[T]) UnlinkAll() {
	f.tp.UnlinkAll()
}

func (f *ForwardingProperty[T]) HasListeners() bool {
	return f.tp.HasListeners()
}

// Dispose detaches from the current target and disposes the mirror holder.
func (f *ForwardingProperty[T]) Dispose() {
	f.unwatch()
	f.target = nil
	f.tp.Dispose()
}

func (f *ForwardingProperty[T]) IsDisposed() bool {
	return f.tp.IsDisposed()
}

func (f *ForwardingProperty[T]) watch(fn func()) (unwatch func()) {
	return f.tp.watch(fn)
}
