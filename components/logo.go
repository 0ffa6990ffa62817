package components

import "github.com/vcrobe/noobdev/vdom"

const (
	accent      = "text-[#FF0000]"
	braceClass  = accent + " font-mono"
	logoBase    = "flex items-center font-bold tracking-tight select-none"
	logoWord    = "text-black"
	logoBraceMx = "mx-0.5"
)

// Logo renders the "Noob{dev}" mark. class is added to the wrapper.
func Logo(class string) *vdom.VNode {
	return vdom.Div(map[string]any{"class": vdom.Class(logoBase, class)},
		vdom.Span("Noob", map[string]any{"class": logoWord}),
		vdom.Span("{", map[string]any{"class": vdom.Class(braceClass, logoBraceMx)}),
		vdom.Span("dev", map[string]any{"class": logoWord}),
		vdom.Span("}", map[string]any{"class": vdom.Class(braceClass, logoBraceMx)}),
	)
}

// BraceWrap surrounds children with accent braces.
func BraceWrap(class string, children ...*vdom.VNode) *vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(children)+2)
	nodes = append(nodes, vdom.Span("{", map[string]any{"class": braceClass}))
	nodes = append(nodes, children...)
	nodes = append(nodes, vdom.Span("}", map[string]any{"class": braceClass}))

	var attrs map[string]any
	if class != "" {
		attrs = map[string]any{"class": class}
	}
	return vdom.Span("", attrs, nodes...)
}
