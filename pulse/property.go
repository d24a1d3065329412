package pulse

// Property is the full-featured value holder: a TinyProperty plus the
// deferred/undeferred two-phase commit lifecycle, optional debug-build
// validation, and the instrumentation state surface.
type Property[T any] struct {
	tp        *TinyProperty[T]
	validator Validator[T]
	stateKey  string

	deferred   bool
	hasPending bool
	pending    T
}

func NewProperty[T any](initial T, opts ...Option[T]) *Property[T] {
	cfg := newConfig(opts)
	if cfg.validator != nil && assertionsEnabled {
		if err := cfg.validator.Validate(initial); err != nil {
			assertf(false, "invalid initial value: %v", err)
		}
	}
	return &Property[T]{
		tp: &TinyProperty[T]{
			value:    initial,
			em:       NewEmitter[Transition[T]](),
			equals:   cfg.equals,
			strategy: cfg.strategy,
		},
		validator: cfg.validator,
		stateKey:  cfg.stateKey,
	}
}

// Get returns the current value. While deferred, writes park in the pending
// slot and Get keeps returning the pre-deferral value until undefer commits.
func (p *Property[T]) Get() T {
	return p.tp.value
}

func (p *Property[T]) Set(v T) {
	assertf(!p.tp.em.disposed, "set on disposed property")
	if p.validator != nil && assertionsEnabled {
		if err := p.validator.Validate(v); err != nil {
			assertf(false, "invalid value: %v", err)
		}
	}
	if p.deferred {
		p.pending = v
		p.hasPending = true
		return
	}
	p.tp.Set(v)
}

// SetDeferred moves the holder between LIVE and DEFERRED.
//
// Entering the deferred state makes subsequent Sets coalesce into a single
// pending value with no dispatch. Leaving it commits the pending value (the
// value becomes readable right here) and returns the notification as a
// closure, or nil if nothing effectively changed. The caller fires the
// closures of a coordinated group only after every member has committed, so
// no listener ever observes the group half-updated.
func (p *Property[T]) SetDeferred(deferred bool) (fire func()) {
	assertf(!p.tp.em.disposed, "setDeferred on disposed property")
	if deferred {
		assertf(!p.deferred, "already deferred, nesting is not supported")
		p.deferred = true
		p.hasPending = false
		return nil
	}

	assertf(p.deferred, "undefer without matching defer")
	p.deferred = false
	if !p.hasPending {
		return nil
	}
	p.hasPending = false

	old := p.tp.value
	if p.tp.equals(p.pending, old) {
		return nil
	}
	p.tp.value = p.pending
	committed := p.tp.value
	return func() {
		p.tp.notify(Transition[T]{New: committed, Old: &old})
	}
}

func (p *Property[T]) IsDeferred() bool {
	return p.deferred
}

func (p *Property[T]) Link(l *ChangeListener[T]) {
	p.tp.Link(l)
}

func (p *Property[T]) LazyLink(l *ChangeListener[T]) {
	p.tp.LazyLink(l)
}

func (p *Property[T]) Unlink(l *ChangeListener[T]) {
	p.tp.Unlink(l)
}

func (p *Property[T]) UnlinkAll() {
	p.tp.UnlinkAll()
}

func (p *Property[T]) HasListener(l *ChangeListener[T]) bool {
	return p.tp.HasListener(l)
}

func (p *Property[T]) HasListeners() bool {
	return p.tp.HasListeners()
}

func (p *Property[T]) Dispose() {
	p.tp.Dispose()
}

func (p *Property[T]) IsDisposed() bool {
	return p.tp.IsDisposed()
}

func (p *Property[T]) watch(fn func()) (unwatch func()) {
	return p.tp.watch(fn)
}

// StateKey names this holder for the instrumentation registry; empty when
// the holder was built without WithStateKey.
func (p *Property[T]) StateKey() string {
	return p.stateKey
}

func (p *Property[T]) StateObject() any {
	return p.tp.value
}

// ApplyState writes an instrumentation-supplied value. The dynamic type must
// match the holder's value type.
func (p *Property[T]) ApplyState(v any) {
	t, ok := v.(T)
	assertf(ok, "apply state %q: wrong dynamic type %T", p.stateKey, v)
	if !ok {
		return
	}
	p.Set(t)
}

// Atomically defers every member, runs fn, commits every member, then fires
// the coalesced notifications. All members become readable with their new
// values before any listener runs.
func Atomically(fn func(), members ...Deferrable) {
	for _, m := range members {
		m.SetDeferred(true)
	}
	fn()
	fires := make([]func(), 0, len(members))
	for _, m := range members {
		if fire := m.SetDeferred(false); fire != nil {
			fires = append(fires, fire)
		}
	}
	for _, fire := range fires {
		fire()
	}
}
