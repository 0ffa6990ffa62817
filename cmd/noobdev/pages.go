package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/vcrobe/noobdev/components"
	"github.com/vcrobe/noobdev/site"
)

// PagesCmd lists where every chrome link leads.
type PagesCmd struct{}

// Run implements the pages command.
func (c *PagesCmd) Run(g *Globals) error {
	return listPages(os.Stdout)
}

// listPages prints each link with its target. Footer quick links are cast
// from their labels without validation, so unknown targets are flagged here.
func listPages(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tLABEL\tPAGE\tVALID")
	for _, link := range site.NavLinks {
		fmt.Fprintf(tw, "navbar\t%s\t%s\t%t\n", link.Label, link.Target, link.Target.Valid())
	}
	for _, label := range components.QuickLinks() {
		p := site.FromLabel(label)
		fmt.Fprintf(tw, "footer/quick-links\t%s\t%s\t%t\n", label, p, p.Valid())
	}
	for _, label := range components.ServiceLinks() {
		fmt.Fprintf(tw, "footer/services\t%s\t%s\t%t\n", label, site.Services, true)
	}
	return tw.Flush()
}
