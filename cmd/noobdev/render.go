package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vcrobe/noobdev/components"
	"github.com/vcrobe/noobdev/events"
	"github.com/vcrobe/noobdev/internal/config"
	"github.com/vcrobe/noobdev/runtime"
	"github.com/vcrobe/noobdev/site"
	"github.com/vcrobe/noobdev/vdom"
)

// RenderCmd prints the chrome as HTML for inspection.
type RenderCmd struct {
	Page     string  `short:"p" help:"Current page (defaults to site.default_page)"`
	MenuOpen bool    `help:"Open the mobile menu before printing"`
	Scroll   float64 `help:"Window scroll offset in pixels"`
	Section  string  `enum:"all,navbar,footer" default:"all" help:"Part of the chrome to print (all, navbar, footer)"`
}

// Run implements the render command.
func (c *RenderCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	page := cfg.Site.DefaultPage
	if c.Page != "" {
		p, ok := site.Parse(c.Page)
		if !ok {
			return fmt.Errorf("unknown page %q (valid: %s)", c.Page, validPages())
		}
		page = p
	}
	return renderChrome(os.Stdout, renderOptions{
		Page:     page,
		MenuOpen: c.MenuOpen,
		Scroll:   c.Scroll,
		Section:  c.Section,
	})
}

type renderOptions struct {
	Page     site.Page
	MenuOpen bool
	Scroll   float64
	Section  string
}

// renderChrome mounts the layout in memory, replays the requested UI state
// through the same handlers a browser would trigger, and writes the HTML.
func renderChrome(w io.Writer, opts renderOptions) error {
	window := events.NewScrollEmitter()
	layout := &components.Layout{State: site.NewState(opts.Page), Window: window}
	renderer := runtime.NewMemoryRenderer(layout)
	defer renderer.Unmount()

	renderer.RenderRoot()
	if opts.Scroll != 0 {
		window.ScrollTo(opts.Scroll)
	}
	if opts.MenuOpen {
		instance, ok := renderer.Instance("navbar")
		if !ok {
			return fmt.Errorf("navbar not mounted")
		}
		instance.(*components.Navbar).ToggleMenu()
	}

	root := renderer.Current()
	var node *vdom.VNode
	switch opts.Section {
	case "", "all":
		node = root
	case "navbar":
		node = vdom.Find(root, func(n *vdom.VNode) bool { return n.Tag == "nav" })
	case "footer":
		node = vdom.Find(root, func(n *vdom.VNode) bool { return n.Tag == "footer" })
	default:
		return fmt.Errorf("unknown section %q", opts.Section)
	}
	if node == nil {
		return fmt.Errorf("section %q not rendered", opts.Section)
	}

	if err := vdom.WriteHTML(w, node); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func validPages() string {
	names := make([]string, len(site.Pages))
	for i, p := range site.Pages {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
