package pulse_test

import (
	"testing"

	"github.com/delaneyj/pulseparty/pulse"
	"github.com/stretchr/testify/assert"
)

// a forwarding holder mirrors its target's value and changes
func TestForwardingMirrorsTarget(t *testing.T) {
	target := pulse.NewTinyProperty(1)
	f := pulse.NewForwardingProperty[int](target, false)
	assert.Equal(t, 1, f.Get())

	recorded := []pair{}
	f.LazyLink(changeListener(func(tr pulse.Transition[int]) {
		recorded = append(recorded, pair{old: *tr.Old, new: tr.New})
	}))

	target.Set(5)
	assert.Equal(t, 5, f.Get())
	assert.Equal(t, []pair{{old: 1, new: 5}}, recorded)
}

// swapping targets moves the mirror listener symmetrically and resyncs
func TestForwardingSetTarget(t *testing.T) {
	first := pulse.NewTinyProperty(1)
	second := pulse.NewTinyProperty(10)
	f := pulse.NewForwardingProperty[int](first, false)

	recorded := []pair{}
	f.LazyLink(changeListener(func(tr pulse.Transition[int]) {
		recorded = append(recorded, pair{old: *tr.Old, new: tr.New})
	}))

	f.SetTarget(second)
	assert.Equal(t, 10, f.Get())
	assert.Equal(t, []pair{{old: 1, new: 10}}, recorded)
	assert.False(t, first.HasListeners())
	assert.True(t, second.HasListeners())

	// the old target no longer reaches the mirror
	first.Set(99)
	assert.Equal(t, 10, f.Get())
	assert.Len(t, recorded, 1)

	second.Set(20)
	assert.Equal(t, 20, f.Get())
	assert.Equal(t, pair{old: 10, new: 20}, recorded[1])
}

// swapping to a target holding an equal value is silent
func TestForwardingSetTargetEqualValue(t *testing.T) {
	first := pulse.NewTinyProperty(4)
	second := pulse.NewTinyProperty(4)
	f := pulse.NewForwardingProperty[int](first, false)

	calls := 0
	f.LazyLink(changeListener(func(pulse.Transition[int]) { calls++ }))

	f.SetTarget(second)
	assert.Equal(t, 0, calls)
}

// write-through sets the target and the value arrives back through the mirror
func TestForwardingWriteThrough(t *testing.T) {
	target := pulse.NewTinyProperty(1)
	f := pulse.NewForwardingProperty[int](target, true)

	f.Set(7)
	assert.Equal(t, 7, target.Get())
	assert.Equal(t, 7, f.Get())
}

// without write-through, set is a usage error
func TestForwardingReadOnlySet(t *testing.T) {
	target := pulse.NewTinyProperty(1)
	f := pulse.NewForwardingProperty[int](target, false)
	assert.Panics(t, func() { f.Set(7) })
	assert.Equal(t, 1, target.Get())
}

// write-through onto a read-only target is a usage error
func TestForwardingWriteThroughUnsettableTarget(t *testing.T) {
	base := pulse.NewTinyProperty(2)
	derived := pulse.NewDerived1(base, func(v int) int { return v * 2 })
	f := pulse.NewForwardingProperty[int](derived, true)
	assert.Panics(t, func() { f.Set(9) })
}

// disposal detaches from the target but leaves the target itself alive
func TestForwardingDispose(t *testing.T) {
	target := pulse.NewTinyProperty(1)
	f := pulse.NewForwardingProperty[int](target, false)

	f.Dispose()
	assert.True(t, f.IsDisposed())
	assert.False(t, target.HasListeners())
	assert.NotPanics(t, func() { target.Set(5) })
}
