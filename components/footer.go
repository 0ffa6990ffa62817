package components

import (
	"github.com/vcrobe/noobdev/console"
	"github.com/vcrobe/noobdev/runtime"
	"github.com/vcrobe/noobdev/site"
	"github.com/vcrobe/noobdev/vdom"
)

var (
	quickLinks     = []string{"Home", "About", "Services", "Showcase", "Blog", "Contact"}
	serviceLinks   = []string{"AI Automation", "Web Development", "SEO Services", "CRM Solutions"}
	socialNetworks = []string{"LinkedIn", "Twitter", "GitHub"}
	legalLinks     = []string{"Privacy", "Terms", "Cookies"}
)

const (
	columnHeading = "font-bold text-gray-900 mb-6 font-mono text-sm underline decoration-[#FF0000]"
	footerLink    = "text-gray-600 hover:text-[#FF0000] text-sm transition-colors"
)

// QuickLinks returns the labels of the footer's Quick Links column.
func QuickLinks() []string { return append([]string(nil), quickLinks...) }

// ServiceLinks returns the labels of the footer's Services column.
func ServiceLinks() []string { return append([]string(nil), serviceLinks...) }

// Footer is the site footer. It has no state of its own and never marks an
// active page.
type Footer struct {
	runtime.ComponentBase

	Nav site.Navigator
}

// ApplyProps takes the navigator from a parent re-render.
func (f *Footer) ApplyProps(next runtime.Component) {
	if p, ok := next.(*Footer); ok {
		f.Nav = p.Nav
	}
}

func (f *Footer) setPage(p site.Page) {
	if f.Nav == nil {
		console.Warn("[Footer] no navigator; dropping selection of", string(p))
		return
	}
	f.Nav.SetPage(p)
}

// Render implements runtime.Component.
func (f *Footer) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Footer(map[string]any{"class": "bg-white border-t border-gray-200 pt-20 pb-10"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-6"},
			vdom.Div(map[string]any{"class": "grid grid-cols-1 md:grid-cols-4 gap-12 mb-20"},
				f.renderBrand(),
				f.renderQuickLinks(),
				f.renderServices(),
				f.renderConnect(),
			),
			f.renderLegal(),
		),
	)
}

func (f *Footer) renderBrand() *vdom.VNode {
	return vdom.Div(map[string]any{"data-section": "brand"},
		Logo("text-xl mb-4"),
		vdom.Paragraph("NO-CODE AUTOMATION STUDIO", map[string]any{"class": "text-sm font-bold text-black mb-1"}),
		vdom.Paragraph("estd 2025", map[string]any{"class": "text-xs text-gray-500 font-mono mb-4"}),
		vdom.Paragraph("Democratizing automation for businesses worldwide. Built by developers, designed for everyone.",
			map[string]any{"class": "text-sm text-gray-600 leading-relaxed"}),
	)
}

func (f *Footer) renderQuickLinks() *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(quickLinks))
	for _, label := range quickLinks {
		// Unchecked: a label without a matching page is passed on as is.
		target := site.FromLabel(label)
		items = append(items, vdom.ListItem(nil,
			vdom.Button(label, map[string]any{
				"class":   footerLink,
				"onClick": func() { f.setPage(target) },
			}),
		))
	}
	return column("Quick Links", "quick-links", vdom.List(map[string]any{"class": "space-y-3"}, items...))
}

func (f *Footer) renderServices() *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(serviceLinks))
	for _, label := range serviceLinks {
		items = append(items, vdom.ListItem(nil,
			vdom.Button(label, map[string]any{
				"class":   footerLink,
				"onClick": func() { f.setPage(site.Services) },
			}),
		))
	}
	return column("Services", "services", vdom.List(map[string]any{"class": "space-y-3"}, items...))
}

func (f *Footer) renderConnect() *vdom.VNode {
	socials := make([]*vdom.VNode, 0, len(socialNetworks))
	for _, name := range socialNetworks {
		socials = append(socials, vdom.Button("", map[string]any{
			"class":      "w-8 h-8 rounded-full border border-gray-200 flex items-center justify-center text-gray-600 hover:border-[#FF0000] hover:text-[#FF0000] transition-all",
			"aria-label": name,
		}, vdom.Span(initial(name), map[string]any{"class": "text-xs font-mono"})))
	}

	newsletter := vdom.Div(map[string]any{"class": "mb-6", "data-section": "newsletter"},
		vdom.Paragraph("Subscribe to weekly tips:", map[string]any{"class": "text-sm text-gray-600 mb-4 font-mono leading-none"}),
		vdom.Div(map[string]any{"class": "flex"},
			vdom.InputEmail(map[string]any{
				"placeholder": "your@email.com",
				"class":       "bg-gray-50 border border-gray-200 px-4 py-2 text-sm w-full focus:outline-none focus:border-[#FF0000]",
			}),
			vdom.Button("→", map[string]any{"class": "bg-[#FF0000] text-white px-4 py-2 hover:bg-black transition-colors"}),
		),
	)

	return column("Connect", "connect",
		newsletter,
		vdom.Div(map[string]any{"class": "flex space-x-4", "data-section": "social"}, socials...),
	)
}

func (f *Footer) renderLegal() *vdom.VNode {
	legal := make([]*vdom.VNode, 0, len(legalLinks))
	for _, label := range legalLinks {
		legal = append(legal, vdom.Button(label, map[string]any{"class": "hover:text-[#FF0000]"}))
	}
	return vdom.Div(map[string]any{
		"class":        "border-t border-gray-100 pt-8 flex flex-col md:flex-row justify-between items-center text-xs text-gray-500 space-y-4 md:space-y-0",
		"data-section": "legal",
	},
		vdom.Paragraph("© 2025 Noobdev. All rights reserved.", nil),
		vdom.Div(map[string]any{"class": "flex space-x-6"}, legal...),
		vdom.Paragraph("Made with ", nil,
			vdom.Span("{❤️}", map[string]any{"class": accent}),
			vdom.Text(" by Noobdev"),
		),
	)
}

func column(heading, section string, body ...*vdom.VNode) *vdom.VNode {
	children := append([]*vdom.VNode{vdom.Heading4(heading, map[string]any{"class": columnHeading})}, body...)
	return vdom.Div(map[string]any{"data-section": section}, children...)
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
