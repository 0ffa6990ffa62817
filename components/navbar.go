package components

import (
	"strconv"

	"github.com/vcrobe/noobdev/console"
	"github.com/vcrobe/noobdev/events"
	"github.com/vcrobe/noobdev/runtime"
	"github.com/vcrobe/noobdev/site"
	"github.com/vcrobe/noobdev/vdom"
)

// ScrollThreshold is the offset in pixels past which the navbar turns solid.
const ScrollThreshold = 20

const (
	navBase        = "fixed top-0 left-0 right-0 z-50 transition-all duration-300"
	navScrolled    = "bg-white shadow-md py-3"
	navTop         = "bg-transparent py-5"
	desktopLink    = "text-sm font-medium transition-colors hover:text-[#FF0000]"
	desktopActive  = accent + " border-b-2 border-[#FF0000]"
	desktopNeutral = "text-gray-600"
	mobileLink     = "text-left text-lg font-bold"
	mobileNeutral  = "text-gray-900"
	ctaDesktop     = "bg-[#FF0000] text-white px-6 py-2 rounded-sm text-sm font-bold hover:bg-black transition-all duration-300"
	ctaMobile      = "bg-[#FF0000] text-white py-4 font-bold"

	glyphOpen   = "✕"
	glyphClosed = "☰"
)

// Navbar is the fixed top navigation. It highlights CurrentPage, reports
// selections through Nav and tracks the window scroll offset for its
// background while mounted.
type Navbar struct {
	runtime.ComponentBase

	// --- PROPS ---

	CurrentPage site.Page
	Nav         site.Navigator
	Window      events.ScrollSource

	// --- STATE ---

	IsScrolled bool
	IsMenuOpen bool

	scroll *events.Subscription
}

// OnMount attaches the scroll listener.
func (n *Navbar) OnMount() {
	if n.Window == nil {
		console.Warn("[Navbar] no scroll source; background stays transparent")
		return
	}
	// A repeated mount must not stack a second listener.
	n.scroll.Release()
	n.scroll = n.Window.OnScroll(n.handleScroll)
}

// OnUnmount detaches the scroll listener.
func (n *Navbar) OnUnmount() {
	n.scroll.Release()
	n.scroll = nil
}

// ApplyProps takes the page and navigator from a parent re-render. The
// scroll source stays the one subscribed at mount.
func (n *Navbar) ApplyProps(next runtime.Component) {
	if p, ok := next.(*Navbar); ok {
		n.CurrentPage = p.CurrentPage
		n.Nav = p.Nav
	}
}

func (n *Navbar) handleScroll(offsetY float64) {
	scrolled := offsetY > ScrollThreshold
	if scrolled == n.IsScrolled {
		return
	}
	n.IsScrolled = scrolled
	n.StateHasChanged()
}

// ToggleMenu opens or closes the mobile menu.
func (n *Navbar) ToggleMenu() {
	n.IsMenuOpen = !n.IsMenuOpen
	n.StateHasChanged()
}

// Select reports a desktop selection.
func (n *Navbar) Select(p site.Page) {
	n.setPage(p)
}

// SelectMobile reports a selection from the mobile menu and closes it.
func (n *Navbar) SelectMobile(p site.Page) {
	n.IsMenuOpen = false
	n.setPage(p)
	n.StateHasChanged()
}

func (n *Navbar) setPage(p site.Page) {
	if n.Nav == nil {
		console.Warn("[Navbar] no navigator; dropping selection of", string(p))
		return
	}
	n.Nav.SetPage(p)
}

// ContainerClass is the class of the <nav> element for the current scroll state.
func (n *Navbar) ContainerClass() string {
	if n.IsScrolled {
		return vdom.Class(navBase, navScrolled)
	}
	return vdom.Class(navBase, navTop)
}

// Render implements runtime.Component.
func (n *Navbar) Render(r runtime.Renderer) *vdom.VNode {
	bar := vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-6 flex justify-between items-center"},
		vdom.Button("", map[string]any{
			"class":      "cursor-pointer",
			"aria-label": "Home",
			"onClick":    func() { n.Select(site.Home) },
		}, Logo("text-2xl")),
		n.renderDesktop(),
		n.renderToggle(),
	)

	var menu *vdom.VNode
	if n.IsMenuOpen {
		menu = n.renderMobile()
	}

	return vdom.Nav(map[string]any{"class": n.ContainerClass()}, bar, menu)
}

func (n *Navbar) renderDesktop() *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(site.NavLinks)+1)
	for _, link := range site.NavLinks {
		target := link.Target
		state := desktopNeutral
		if target == n.CurrentPage {
			state = desktopActive
		}
		links = append(links, vdom.Button(link.Label, map[string]any{
			"class":   vdom.Class(desktopLink, state),
			"onClick": func() { n.Select(target) },
		}))
	}
	links = append(links, vdom.Button("Get Started", map[string]any{
		"class":   ctaDesktop,
		"onClick": func() { n.Select(site.Contact) },
	}))

	return vdom.Div(map[string]any{
		"class":        "hidden md:flex items-center space-x-8",
		"data-section": "desktop-links",
	}, links...)
}

func (n *Navbar) renderToggle() *vdom.VNode {
	glyph := glyphClosed
	if n.IsMenuOpen {
		glyph = glyphOpen
	}
	return vdom.Button("", map[string]any{
		"class":         "md:hidden text-black",
		"aria-label":    "Toggle menu",
		"aria-expanded": strconv.FormatBool(n.IsMenuOpen),
		"data-section":  "menu-toggle",
		"onClick":       n.ToggleMenu,
	}, vdom.Span(glyph, map[string]any{"class": "text-2xl"}))
}

func (n *Navbar) renderMobile() *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(site.NavLinks)+1)
	for _, link := range site.NavLinks {
		target := link.Target
		label := link.Label
		state := mobileNeutral
		// The mobile menu marks the active page with literal braces as well
		// as color; the desktop bar uses color and underline only.
		if target == n.CurrentPage {
			state = accent
			label = "{" + label + "}"
		}
		links = append(links, vdom.Button(label, map[string]any{
			"class":   vdom.Class(mobileLink, state),
			"onClick": func() { n.SelectMobile(target) },
		}))
	}
	links = append(links, vdom.Button("Get Started", map[string]any{
		"class":   ctaMobile,
		"onClick": func() { n.SelectMobile(site.Contact) },
	}))

	return vdom.Div(map[string]any{
		"class":        "md:hidden absolute top-full left-0 right-0 bg-white border-t border-gray-100 shadow-xl py-6 px-6 flex flex-col space-y-4",
		"data-section": "mobile-menu",
	}, links...)
}
