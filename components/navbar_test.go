//go:build !wasm

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/noobdev/events"
	"github.com/vcrobe/noobdev/site"
	"github.com/vcrobe/noobdev/testcomponents"
	"github.com/vcrobe/noobdev/vdom"
)

// recorder is a Navigator that remembers every page it was given.
type recorder struct {
	pages []site.Page
}

func (r *recorder) SetPage(p site.Page) {
	r.pages = append(r.pages, p)
}

func mountNavbar(t *testing.T, current site.Page) (*Navbar, *testcomponents.TestRenderer, *recorder, *events.ScrollEmitter) {
	t.Helper()
	nav := &recorder{}
	window := events.NewScrollEmitter()
	navbar := &Navbar{CurrentPage: current, Nav: nav, Window: window}
	renderer := testcomponents.NewTestRenderer(navbar)
	renderer.RenderRoot()
	return navbar, renderer, nav, window
}

func desktopLinks(t *testing.T, root *vdom.VNode) []*vdom.VNode {
	t.Helper()
	section := testcomponents.BySection(root, "desktop-links")
	require.NotNil(t, section)
	require.Len(t, section.Children, len(site.NavLinks)+1)
	return section.Children
}

func TestNavbar_DesktopLinksCallNavigatorOnce(t *testing.T) {
	for i, link := range site.NavLinks {
		t.Run(link.Label, func(t *testing.T) {
			_, renderer, nav, _ := mountNavbar(t, site.Home)

			button := desktopLinks(t, renderer.GetCurrentVDOM())[i]
			require.Equal(t, link.Label, button.Content)
			button.OnClick()

			assert.Equal(t, []site.Page{link.Target}, nav.pages)
		})
	}
}

func TestNavbar_GetStartedGoesToContact(t *testing.T) {
	_, renderer, nav, _ := mountNavbar(t, site.Blog)

	links := desktopLinks(t, renderer.GetCurrentVDOM())
	cta := links[len(links)-1]
	require.Equal(t, "Get Started", cta.Content)
	cta.OnClick()

	assert.Equal(t, []site.Page{site.Contact}, nav.pages)
}

func TestNavbar_LogoGoesHome(t *testing.T) {
	_, renderer, nav, _ := mountNavbar(t, site.Blog)

	logo := vdom.Find(renderer.GetCurrentVDOM(), func(n *vdom.VNode) bool {
		return n.Attr("aria-label") == "Home"
	})
	require.NotNil(t, logo)
	logo.OnClick()

	assert.Equal(t, []site.Page{site.Home}, nav.pages)
}

func TestNavbar_DesktopHighlight(t *testing.T) {
	cases := map[site.Page]string{site.About: "About", site.Contact: "Contact"}
	for current, activeLabel := range cases {
		t.Run(string(current), func(t *testing.T) {
			_, renderer, _, _ := mountNavbar(t, current)

			for _, button := range desktopLinks(t, renderer.GetCurrentVDOM())[:len(site.NavLinks)] {
				active := strings.Contains(button.Class(), desktopActive)
				neutral := strings.Contains(button.Class(), desktopNeutral)
				if button.Content == activeLabel {
					assert.True(t, active, button.Content)
					assert.False(t, neutral, button.Content)
				} else {
					assert.False(t, active, button.Content)
					assert.True(t, neutral, button.Content)
				}
			}
		})
	}
}

func TestNavbar_ToggleParity(t *testing.T) {
	navbar, renderer, _, _ := mountNavbar(t, site.Home)

	for i := 1; i <= 6; i++ {
		toggle := testcomponents.BySection(renderer.GetCurrentVDOM(), "menu-toggle")
		require.NotNil(t, toggle)
		toggle.OnClick()

		open := i%2 == 1
		assert.Equal(t, open, navbar.IsMenuOpen, "after %d toggles", i)

		menu := testcomponents.BySection(renderer.GetCurrentVDOM(), "mobile-menu")
		glyph := vdom.TextContent(testcomponents.BySection(renderer.GetCurrentVDOM(), "menu-toggle"))
		if open {
			assert.NotNil(t, menu)
			assert.Equal(t, glyphOpen, glyph)
		} else {
			assert.Nil(t, menu)
			assert.Equal(t, glyphClosed, glyph)
		}
	}
}

func TestNavbar_MobileSelectionClosesMenu(t *testing.T) {
	labels := make([]string, 0, len(site.NavLinks)+1)
	for _, link := range site.NavLinks {
		labels = append(labels, link.Label)
	}
	labels = append(labels, "Get Started")

	for i, label := range labels {
		t.Run(label, func(t *testing.T) {
			navbar, renderer, nav, _ := mountNavbar(t, site.Showcase)
			navbar.ToggleMenu()
			require.True(t, navbar.IsMenuOpen)

			menu := testcomponents.BySection(renderer.GetCurrentVDOM(), "mobile-menu")
			require.NotNil(t, menu)
			require.Len(t, menu.Children, len(labels))
			menu.Children[i].OnClick()

			want := site.Contact
			if i < len(site.NavLinks) {
				want = site.NavLinks[i].Target
			}
			assert.Equal(t, []site.Page{want}, nav.pages)
			assert.False(t, navbar.IsMenuOpen)
			assert.Nil(t, testcomponents.BySection(renderer.GetCurrentVDOM(), "mobile-menu"))
		})
	}
}

func TestNavbar_MobileSelectionWhenAlreadyClosed(t *testing.T) {
	navbar, _, nav, _ := mountNavbar(t, site.Home)

	navbar.SelectMobile(site.Blog)

	assert.False(t, navbar.IsMenuOpen)
	assert.Equal(t, []site.Page{site.Blog}, nav.pages)
}

func TestNavbar_MobileActiveLabelInBraces(t *testing.T) {
	navbar, renderer, _, _ := mountNavbar(t, site.Blog)
	navbar.ToggleMenu()

	menu := testcomponents.BySection(renderer.GetCurrentVDOM(), "mobile-menu")
	require.NotNil(t, menu)
	got := testcomponents.Texts(menu.Children)

	assert.Equal(t, []string{"Home", "About", "Services", "Showcase", "{Blog}", "Contact", "Get Started"}, got)
	assert.Contains(t, menu.Children[4].Class(), accent)
	assert.Contains(t, menu.Children[0].Class(), mobileNeutral)

	// The desktop bar keeps the plain label.
	assert.Equal(t, "Blog", desktopLinks(t, renderer.GetCurrentVDOM())[4].Content)
}

func TestNavbar_ScrollThreshold(t *testing.T) {
	navbar, renderer, _, window := mountNavbar(t, site.Home)
	require.False(t, navbar.IsScrolled)
	assert.Contains(t, renderer.GetCurrentVDOM().Class(), navTop)

	steps := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{20, false},
		{20.5, true},
		{300, true},
		{21, true},
		{3, false},
	}
	for _, step := range steps {
		window.ScrollTo(step.offset)
		assert.Equal(t, step.want, navbar.IsScrolled, "offset %v", step.offset)
		class := renderer.GetCurrentVDOM().Class()
		if step.want {
			assert.Contains(t, class, navScrolled)
		} else {
			assert.Contains(t, class, navTop)
		}
	}
}

func TestNavbar_ScrollRendersOnlyOnChange(t *testing.T) {
	_, renderer, _, window := mountNavbar(t, site.Home)
	before := renderer.RenderCount()

	window.ScrollTo(5)
	window.ScrollTo(10)
	assert.Equal(t, before, renderer.RenderCount())

	window.ScrollTo(50)
	window.ScrollTo(60)
	assert.Equal(t, before+1, renderer.RenderCount())
}

func TestNavbar_UnmountReleasesScrollListener(t *testing.T) {
	navbar, renderer, _, window := mountNavbar(t, site.Home)
	require.Equal(t, 1, window.Listeners())

	renderer.Unmount()
	renders := renderer.RenderCount()
	window.ScrollTo(500)

	assert.Equal(t, 0, window.Listeners())
	assert.False(t, navbar.IsScrolled)
	assert.Equal(t, renders, renderer.RenderCount())
}

func TestNavbar_RepeatedMountKeepsOneListener(t *testing.T) {
	navbar, _, _, window := mountNavbar(t, site.Home)

	navbar.OnMount()
	navbar.OnMount()
	assert.Equal(t, 1, window.Listeners())

	navbar.OnUnmount()
	navbar.OnUnmount()
	assert.Equal(t, 0, window.Listeners())
}

func TestNavbar_IndependentInstances(t *testing.T) {
	a, _, _, windowA := mountNavbar(t, site.Home)
	b, _, _, _ := mountNavbar(t, site.Home)

	a.ToggleMenu()
	windowA.ScrollTo(100)

	assert.True(t, a.IsMenuOpen)
	assert.True(t, a.IsScrolled)
	assert.False(t, b.IsMenuOpen)
	assert.False(t, b.IsScrolled)
}

func TestNavbar_NilNavigatorAndWindow(t *testing.T) {
	navbar := &Navbar{CurrentPage: site.Home}
	renderer := testcomponents.NewTestRenderer(navbar)

	require.NotPanics(t, func() { renderer.RenderRoot() })
	require.NotPanics(t, func() { navbar.Select(site.About) })
	require.NotPanics(t, func() { renderer.Unmount() })
}
