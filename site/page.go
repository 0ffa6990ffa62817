// Package site holds the page identifiers the chrome navigates between and
// the capability the host hands to components for changing page.
package site

import "strings"

// Page identifies a site section.
type Page string

const (
	Home     Page = "home"
	About    Page = "about"
	Services Page = "services"
	Showcase Page = "showcase"
	Blog     Page = "blog"
	Contact  Page = "contact"
)

// Pages lists every known page in navigation order.
var Pages = []Page{Home, About, Services, Showcase, Blog, Contact}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

func (p Page) String() string {
	return string(p)
}

// FromLabel turns a display label into a page by lowercasing it. The result
// is not checked against Pages: a label with no matching page yields an
// invalid Page, and deciding what to do with it is left to the Navigator.
func FromLabel(label string) Page {
	return Page(strings.ToLower(label))
}

// Parse returns the page named s, case-insensitively.
func Parse(s string) (Page, bool) {
	p := FromLabel(strings.TrimSpace(s))
	return p, p.Valid()
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label  string
	Target Page
}

// NavLinks are the navigation bar entries in display order.
var NavLinks = []NavLink{
	{Label: "Home", Target: Home},
	{Label: "About", Target: About},
	{Label: "Services", Target: Services},
	{Label: "Showcase", Target: Showcase},
	{Label: "Blog", Target: Blog},
	{Label: "Contact", Target: Contact},
}
