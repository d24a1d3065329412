package pulse

// Dependency is the capability a Multilink needs from a holder: being told
// that the value changed. The watch callback carries no value on purpose;
// combinators always read current values at invocation time.
type Dependency interface {
	watch(fn func()) (unwatch func())
}

// Source is a readable holder. Every holder in this package implements it.
type Source[T any] interface {
	Dependency
	Get() T
}

// Settable is a holder that also accepts writes, used by forwarding holders
// configured to write through to their target.
type Settable[T any] interface {
	Source[T]
	Set(value T)
}

// Deferrable is the two-phase commit surface: SetDeferred(false) returns the
// pending notification as a closure (or nil) so a coordinated group can
// commit every member before any listener runs.
type Deferrable interface {
	SetDeferred(deferred bool) (fire func())
}

// TickSource is a holder-compatible feed of elapsed seconds. The scheduler
// producing ticks lives outside this package; time-based consumers only ever
// see it through this interface.
type TickSource = Source[float64]
