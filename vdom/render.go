//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/noobdev/console"
)

// releaseCallbacks releases every js.Func attached to the tree rooted at v.
// Only call it for nodes whose elements have left the document.
func releaseCallbacks(v *VNode) {
	Walk(v, func(n *VNode) bool {
		for _, cb := range n.callbacks {
			if fn, ok := cb.(js.Func); ok {
				fn.Release()
			}
		}
		n.callbacks = nil
		return true
	})
}

// detachCallbacks removes v's own click listeners from el and releases them.
func detachCallbacks(el js.Value, v *VNode) {
	for _, cb := range v.callbacks {
		if fn, ok := cb.(js.Func); ok {
			el.Call("removeEventListener", "click", fn)
			fn.Release()
		}
	}
	v.callbacks = nil
}

// Clear empties the mount element and releases the handlers of prev.
func Clear(selector string, prev *VNode) {
	if selector == "" {
		return
	}
	releaseCallbacks(prev)

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// Patch brings the DOM under selector from prev to next, reusing elements
// where the tag is unchanged so focus and typed input survive re-renders.
func Patch(selector string, prev, next *VNode) {
	if prev == nil || next == nil {
		Clear(selector, prev)
		RenderToSelector(selector, next)
		return
	}
	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	root := mount.Get("firstChild")
	if !root.Truthy() {
		RenderTo(mount, next)
		return
	}
	patchNode(root, prev, next)
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
	case func(), nil:
		// handlers are attached separately
	default:
		el.Call("setAttribute", key, v)
	}
}

func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	onClick := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		onClick()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.callbacks = append(n.callbacks, cb)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Tag == "input" {
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	}

	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	attachClick(el, n)
	return el
}

func replaceNode(el js.Value, prev, next *VNode) {
	releaseCallbacks(prev)
	fresh := createElement(next)
	if parent := el.Get("parentNode"); parent.Truthy() && fresh.Truthy() {
		parent.Call("replaceChild", fresh, el)
	}
}

func patchNode(el js.Value, prev, next *VNode) {
	// A change of tag, or of whether the node leads with its own text,
	// shifts the child layout; rebuild instead of patching.
	if prev.Tag != next.Tag || (prev.Content == "") != (next.Content == "") {
		replaceNode(el, prev, next)
		return
	}

	if next.Tag == TextTag {
		if prev.Content != next.Content {
			el.Set("nodeValue", next.Content)
		}
		return
	}

	patchAttributes(el, prev.Attributes, next.Attributes)
	detachCallbacks(el, prev)
	attachClick(el, next)

	if next.Tag == "input" {
		// Leave what the user typed alone.
		return
	}

	offset := 0
	if next.Content != "" {
		offset = 1
		if prev.Content != next.Content {
			el.Get("firstChild").Set("nodeValue", next.Content)
		}
	}
	patchChildren(el, offset, prev.Children, next.Children)
}

func patchAttributes(el js.Value, prev, next map[string]any) {
	for key := range prev {
		if _, exists := next[key]; !exists {
			el.Call("removeAttribute", key)
		}
	}
	for key, value := range next {
		if old, ok := prev[key]; !ok || old != value {
			setAttributeValue(el, key, value)
		}
	}
}

// patchChildren patches children by position. DOM child i+offset belongs
// to VNode child i.
func patchChildren(el js.Value, offset int, prev, next []*VNode) {
	nodes := el.Get("childNodes")
	common := min(len(prev), len(next))

	for i := 0; i < common; i++ {
		child := nodes.Call("item", i+offset)
		if child.Truthy() {
			patchNode(child, prev[i], next[i])
		}
	}
	for i := common; i < len(next); i++ {
		if fresh := createElement(next[i]); fresh.Truthy() {
			el.Call("appendChild", fresh)
		}
	}
	for i := len(prev) - 1; i >= common; i-- {
		releaseCallbacks(prev[i])
		if child := nodes.Call("item", i+offset); child.Truthy() {
			el.Call("removeChild", child)
		}
	}
}
