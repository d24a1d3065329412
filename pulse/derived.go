package pulse

// DerivedProperty is a read-only holder whose value is recomputed by an
// internal Multilink whenever any dependency changes. Writes from outside
// are an assertion failure; the derivation is the only writer.
type DerivedProperty[R any] struct {
	p  *Property[R]
	ml *Multilink
}

func newDerived[R any](deps []Dependency, compute func() R, opts ...Option[R]) *DerivedProperty[R] {
	d := &DerivedProperty[R]{
		p: NewProperty(compute(), opts...),
	}
	d.ml = NewLazyMultilink(deps, func() {
		d.p.Set(compute())
	})
	return d
}

func (d *DerivedProperty[R]) Get() R {
	return d.p.Get()
}

// Set always fails: derived values follow their dependencies.
func (d *DerivedProperty[R]) Set(R) {
	assertf(false, "derived property is not settable")
}

func (d *DerivedProperty[R]) Link(l *ChangeListener[R]) {
	d.p.Link(l)
}

func (d *DerivedProperty[R]) LazyLink(l *ChangeListener[R]) {
	d.p.LazyLink(l)
}

func (d *DerivedProperty[R]) Unlink(l *ChangeListener[R]) {
	d.p.Unlink(l)
}

func (d *DerivedProperty[R]) UnlinkAll() {
	d.p.UnlinkAll()
}

func (d *DerivedProperty[R]) HasListeners() bool {
	return d.p.HasListeners()
}

// Dispose tears down the internal multilink and the holder.
func (d *DerivedProperty[R]) Dispose() {
	d.ml.Dispose()
	d.p.Dispose()
}

func (d *DerivedProperty[R]) IsDisposed() bool {
	return d.p.IsDisposed()
}

func (d *DerivedProperty[R]) watch(fn func()) (unwatch func()) {
	return d.p.watch(fn)
}

// NewMappedProperty derives a holder by applying mapFn to a single source,
// the arity-1 specialization of derivation.
func NewMappedProperty[T, R any](src Source[T], mapFn func(T) R, opts ...Option[R]) *DerivedProperty[R] {
	return NewDerived1(src, mapFn, opts...)
}
