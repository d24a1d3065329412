package pulse

// Transition is the payload delivered to holder listeners. Old is nil
// exactly once: on the immediate callback of Link.
type Transition[T any] struct {
	New T
	Old *T
}

// ChangeListener is the listener type holders accept through Link and
// LazyLink.
type ChangeListener[T any] = Listener[Transition[T]]

// TinyProperty is the minimal value holder: a current value, an equality
// policy and an Emitter. It notifies synchronously on the calling stack and
// only when the equality policy says the value actually changed.
//
// A Set performed from inside one of this holder's own listeners is handled
// per the configured ReentrantStrategy; under both disciplines every
// committed transition is observed by every listener exactly once, and Get
// always returns the latest committed value, even mid-dispatch.
type TinyProperty[T any] struct {
	value    T
	em       *Emitter[Transition[T]]
	equals   EqualsFunc[T]
	strategy ReentrantStrategy

	depth   int
	pending []Transition[T]
}

func NewTinyProperty[T any](initial T, opts ...Option[T]) *TinyProperty[T] {
	cfg := newConfig(opts)
	assertf(cfg.validator == nil, "validator requires Property, not TinyProperty")
	assertf(cfg.stateKey == "", "state key requires Property, not TinyProperty")
	return &TinyProperty[T]{
		value:    initial,
		em:       NewEmitter[Transition[T]](),
		equals:   cfg.equals,
		strategy: cfg.strategy,
	}
}

func (p *TinyProperty[T]) Get() T {
	return p.value
}

// Set commits v if it differs from the current value per the equality
// policy, then notifies listeners with the old and new values.
func (p *TinyProperty[T]) Set(v T) {
	assertf(!p.em.disposed, "set on disposed property")
	if p.equals(v, p.value) {
		return
	}
	old := p.value
	p.value = v
	p.notify(Transition[T]{New: v, Old: &old})
}

// notify dispatches one committed transition, honoring the re-entrant
// discipline. Queue mode parks transitions raised during an active dispatch
// and replays them FIFO once the stack unwinds to the outermost frame.
func (p *TinyProperty[T]) notify(tr Transition[T]) {
	if p.depth > 0 && p.strategy == ReentrantQueue {
		p.pending = append(p.pending, tr)
		return
	}

	p.depth++
	p.em.Emit(tr)
	p.depth--

	if p.depth == 0 {
		for len(p.pending) > 0 {
			next := p.pending[0]
			p.pending = p.pending[1:]
			p.depth++
			p.em.Emit(next)
			p.depth--
		}
		p.pending = nil
	}
}

// Link registers l and immediately invokes it with the current value and a
// nil old value, the sentinel for "initial call".
func (p *TinyProperty[T]) Link(l *ChangeListener[T]) {
	p.em.AddListener(l)
	(*l)(Transition[T]{New: p.value})
}

// LazyLink registers l without the immediate initial call.
func (p *TinyProperty[T]) LazyLink(l *ChangeListener[T]) {
	p.em.AddListener(l)
}

func (p *TinyProperty[T]) Unlink(l *ChangeListener[T]) {
	p.em.RemoveListener(l)
}

func (p *TinyProperty[T]) UnlinkAll() {
	p.em.RemoveAllListeners()
}

func (p *TinyProperty[T]) HasListener(l *ChangeListener[T]) bool {
	return p.em.HasListener(l)
}

func (p *TinyProperty[T]) HasListeners() bool {
	return p.em.HasListeners()
}

// Dispose clears the listener set and makes the holder unusable. Disposing
// twice is an assertion failure.
func (p *TinyProperty[T]) Dispose() {
	p.em.Dispose()
}

func (p *TinyProperty[T]) IsDisposed() bool {
	return p.em.disposed
}

func (p *TinyProperty[T]) watch(fn func()) (unwatch func()) {
	l := ChangeListener[T](func(Transition[T]) { fn() })
	p.em.AddListener(&l)
	return func() { p.em.RemoveListener(&l) }
}
