package components

import (
	"github.com/vcrobe/noobdev/events"
	"github.com/vcrobe/noobdev/runtime"
	"github.com/vcrobe/noobdev/site"
	"github.com/vcrobe/noobdev/vdom"
)

// Layout is the persistent page chrome: navbar, page body, footer. It reads
// the current page from State and re-renders when it changes. The navbar
// and footer are rendered as keyed children so their instances, and the
// navbar's menu and scroll state, survive page changes.
type Layout struct {
	runtime.ComponentBase

	State  *site.State
	Window events.ScrollSource

	// BodyContent is the slot for the current page's content.
	BodyContent []*vdom.VNode

	unsubscribe func()
}

// OnMount subscribes to page changes.
func (l *Layout) OnMount() {
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
	l.unsubscribe = l.State.Subscribe(func(site.Page) {
		l.StateHasChanged()
	})
}

// OnUnmount drops the page subscription.
func (l *Layout) OnUnmount() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

// SetBodyContent fills the body slot.
func (l *Layout) SetBodyContent(content []*vdom.VNode) {
	l.BodyContent = content
}

// Render implements runtime.Component.
func (l *Layout) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "min-h-screen flex flex-col"},
		r.RenderChild("navbar", &Navbar{
			CurrentPage: l.State.CurrentPage(),
			Nav:         l.State,
			Window:      l.Window,
		}),
		vdom.Main(map[string]any{"class": "flex-grow pt-24", "data-page": string(l.State.CurrentPage())}, l.BodyContent...),
		r.RenderChild("footer", &Footer{Nav: l.State}),
	)
}
