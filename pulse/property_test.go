package pulse_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/pulseparty/pulse"
	"github.com/stretchr/testify/assert"
)

// deferred sets coalesce into one dispatch against the pre-deferral value
func TestPropertyDeferredCoalescing(t *testing.T) {
	p := pulse.NewProperty(1)
	recorded := []pair{}
	p.LazyLink(changeListener(func(tr pulse.Transition[int]) {
		recorded = append(recorded, pair{old: *tr.Old, new: tr.New})
	}))

	p.SetDeferred(true)
	assert.True(t, p.IsDeferred())

	p.Set(2)
	p.Set(3)
	p.Set(4)
	assert.Equal(t, 1, p.Get())
	assert.Empty(t, recorded)

	fire := p.SetDeferred(false)
	assert.False(t, p.IsDeferred())
	assert.Equal(t, 4, p.Get())
	assert.Empty(t, recorded)

	if assert.NotNil(t, fire) {
		fire()
	}
	assert.Equal(t, []pair{{old: 1, new: 4}}, recorded)
}

// undeferring with no pending set, or a pending set back to the old value, is silent
func TestPropertyDeferredNoChange(t *testing.T) {
	p := pulse.NewProperty(1)
	calls := 0
	p.LazyLink(changeListener(func(pulse.Transition[int]) { calls++ }))

	p.SetDeferred(true)
	assert.Nil(t, p.SetDeferred(false))

	p.SetDeferred(true)
	p.Set(5)
	p.Set(1)
	fire := p.SetDeferred(false)
	assert.Nil(t, fire)
	assert.Equal(t, 1, p.Get())
	assert.Equal(t, 0, calls)
}

// deferring twice or undeferring without a matching defer is a usage error
func TestPropertyDeferredMisuse(t *testing.T) {
	p := pulse.NewProperty(1)
	assert.Panics(t, func() { p.SetDeferred(false) })

	p.SetDeferred(true)
	assert.Panics(t, func() { p.SetDeferred(true) })
}

// atomically commits every member before any listener observes the batch
func TestPropertyAtomically(t *testing.T) {
	a := pulse.NewProperty(1)
	b := pulse.NewProperty(10)

	observed := [][2]int{}
	record := changeListener(func(pulse.Transition[int]) {
		observed = append(observed, [2]int{a.Get(), b.Get()})
	})
	a.LazyLink(record)
	b.LazyLink(record)

	pulse.Atomically(func() {
		a.Set(2)
		b.Set(20)
		// neither dispatch has happened yet
		assert.Empty(t, observed)
	}, a, b)

	// both listeners saw the fully committed pair
	assert.Equal(t, [][2]int{{2, 20}, {2, 20}}, observed)
}

// a rejected value panics and leaves the holder untouched
func TestPropertyValidator(t *testing.T) {
	nonNegative := pulse.ValidatorFunc[int](func(v int) error {
		if v < 0 {
			return fmt.Errorf("want non-negative, got %d", v)
		}
		return nil
	})
	p := pulse.NewProperty(1, pulse.WithValidator[int](nonNegative))
	calls := 0
	p.LazyLink(changeListener(func(pulse.Transition[int]) { calls++ }))

	assert.Panics(t, func() { p.Set(-1) })
	assert.Equal(t, 1, p.Get())
	assert.Equal(t, 0, calls)

	p.Set(2)
	assert.Equal(t, 2, p.Get())
	assert.Equal(t, 1, calls)
}

// the initial value is validated too
func TestPropertyValidatorInitial(t *testing.T) {
	alwaysNo := pulse.ValidatorFunc[int](func(int) error {
		return fmt.Errorf("rejected")
	})
	assert.Panics(t, func() {
		pulse.NewProperty(1, pulse.WithValidator[int](alwaysNo))
	})
}

// properties carry an optional state key for instrumentation
func TestPropertyStateRoundTrip(t *testing.T) {
	p := pulse.NewProperty(3, pulse.WithStateKey[int]("sim.model.count"))
	assert.Equal(t, "sim.model.count", p.StateKey())
	assert.Equal(t, 3, p.StateObject())

	p.ApplyState(9)
	assert.Equal(t, 9, p.Get())

	assert.Panics(t, func() { p.ApplyState("not an int") })
}

// disposal flows through to the underlying holder
func TestPropertyDispose(t *testing.T) {
	p := pulse.NewProperty(1)
	p.Dispose()
	assert.True(t, p.IsDisposed())
	assert.Panics(t, func() { p.Set(2) })
	assert.Panics(t, func() { p.SetDeferred(true) })
}
