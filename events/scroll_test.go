package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_ReleaseRunsOnce(t *testing.T) {
	calls := 0
	sub := NewSubscription(func() { calls++ })

	sub.Release()
	sub.Release()

	assert.Equal(t, 1, calls)
}

func TestSubscription_NilIsSafe(t *testing.T) {
	var sub *Subscription
	require.NotPanics(t, sub.Release)
	require.NotPanics(t, NewSubscription(nil).Release)
}

func TestScrollEmitter_DeliversOffsets(t *testing.T) {
	e := NewScrollEmitter()
	var got []float64
	sub := e.OnScroll(func(y float64) { got = append(got, y) })

	e.ScrollTo(10)
	e.ScrollTo(10)
	e.ScrollTo(42.5)

	assert.Equal(t, []float64{10, 10, 42.5}, got)
	assert.Equal(t, 42.5, e.Offset())
	assert.Equal(t, 1, e.Listeners())

	sub.Release()
	e.ScrollTo(100)

	assert.Len(t, got, 3)
	assert.Equal(t, 0, e.Listeners())
}

func TestScrollEmitter_IndependentListeners(t *testing.T) {
	e := NewScrollEmitter()
	a, b := 0, 0
	subA := e.OnScroll(func(float64) { a++ })
	e.OnScroll(func(float64) { b++ })

	subA.Release()
	subA.Release()
	e.ScrollTo(5)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, e.Listeners())
}
