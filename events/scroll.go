package events

import (
	"sync"

	"github.com/vcrobe/noobdev/signals"
)

// ScrollListener receives the vertical scroll offset of the window, in pixels.
type ScrollListener func(offsetY float64)

// ScrollSource is anything that can report window scroll changes.
type ScrollSource interface {
	// OnScroll registers fn for every scroll notification. The listener stays
	// attached until the returned Subscription is released.
	OnScroll(fn ScrollListener) *Subscription
}

// Subscription is a handle to an attached listener.
// Release detaches it; releasing more than once, or a nil Subscription, is a no-op.
type Subscription struct {
	once    sync.Once
	release func()
}

// NewSubscription wraps a release func so it runs at most once.
func NewSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// Release detaches the listener.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// ScrollEmitter is an in-memory ScrollSource. Tests and the native CLI use it
// in place of the browser window.
type ScrollEmitter struct {
	offset *signals.Signal[float64]
}

// Compile-time assertion that ScrollEmitter satisfies ScrollSource.
var _ ScrollSource = (*ScrollEmitter)(nil)

// NewScrollEmitter returns an emitter at offset 0.
func NewScrollEmitter() *ScrollEmitter {
	return &ScrollEmitter{offset: signals.NewSignal(0.0)}
}

// OnScroll implements ScrollSource.
func (e *ScrollEmitter) OnScroll(fn ScrollListener) *Subscription {
	unsubscribe := e.offset.Subscribe(func() {
		fn(e.offset.Get())
	})
	return NewSubscription(unsubscribe)
}

// ScrollTo records a new offset and notifies every listener, even when the
// offset is unchanged, as a browser does for repeated scroll events.
func (e *ScrollEmitter) ScrollTo(offsetY float64) {
	e.offset.Set(offsetY)
}

// Offset returns the last recorded offset.
func (e *ScrollEmitter) Offset() float64 {
	return e.offset.Get()
}

// Listeners returns the number of attached listeners.
func (e *ScrollEmitter) Listeners() int {
	return e.offset.Subscribers()
}
