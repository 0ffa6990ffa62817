package vdom

import "strings"

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every node under n (n included) matching pred, in document order.
func FindAll(n *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(n, func(v *VNode) bool {
		if pred(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Find returns the first node matching pred, or nil.
func Find(n *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(n, func(v *VNode) bool {
		if found != nil {
			return false
		}
		if pred(v) {
			found = v
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the text of n and all its descendants.
func TextContent(n *VNode) string {
	var b strings.Builder
	Walk(n, func(v *VNode) bool {
		b.WriteString(v.Content)
		return true
	})
	return b.String()
}
