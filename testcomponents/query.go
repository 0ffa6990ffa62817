package testcomponents

import "github.com/vcrobe/noobdev/vdom"

// BySection returns the first node whose data-section attribute equals name.
func BySection(root *vdom.VNode, name string) *vdom.VNode {
	return vdom.Find(root, func(n *vdom.VNode) bool {
		return n.Attr("data-section") == name
	})
}

// Buttons returns every <button> under root in document order.
func Buttons(root *vdom.VNode) []*vdom.VNode {
	return vdom.FindAll(root, func(n *vdom.VNode) bool {
		return n.Tag == "button"
	})
}

// ButtonByText returns the first <button> under root whose text is text.
func ButtonByText(root *vdom.VNode, text string) *vdom.VNode {
	return vdom.Find(root, func(n *vdom.VNode) bool {
		return n.Tag == "button" && vdom.TextContent(n) == text
	})
}

// Texts returns the text content of each node.
func Texts(nodes []*vdom.VNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = vdom.TextContent(n)
	}
	return out
}
