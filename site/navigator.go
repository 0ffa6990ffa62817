package site

import (
	"github.com/vcrobe/noobdev/console"
	"github.com/vcrobe/noobdev/signals"
)

// Navigator changes the current page. It is the only way the chrome
// affects application state.
type Navigator interface {
	SetPage(p Page)
}

// NavigatorFunc adapts a plain func to Navigator.
type NavigatorFunc func(p Page)

// SetPage calls f(p).
func (f NavigatorFunc) SetPage(p Page) {
	f(p)
}

// State is a host-side owner of the current page backed by a signal.
// Components never hold one directly; they receive its SetPage as a
// Navigator and, for the navbar, its current value as a prop.
type State struct {
	page *signals.Signal[Page]
}

var _ Navigator = (*State)(nil)

// NewState returns a State starting at initial.
func NewState(initial Page) *State {
	return &State{page: signals.NewSignal(initial)}
}

// CurrentPage returns the current page.
func (s *State) CurrentPage() Page {
	return s.page.Get()
}

// SetPage switches to p. Pages outside Pages are logged and ignored, so an
// unchecked label cast cannot put the host into an unknown page.
func (s *State) SetPage(p Page) {
	if !p.Valid() {
		console.Warn("[State.SetPage] ignoring unknown page:", string(p))
		return
	}
	s.page.Set(p)
}

// Subscribe registers fn for page changes and returns its unsubscribe func.
func (s *State) Subscribe(fn func(Page)) (unsubscribe func()) {
	return s.page.Subscribe(func() {
		fn(s.page.Get())
	})
}
