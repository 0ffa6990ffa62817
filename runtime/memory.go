package runtime

import "github.com/vcrobe/noobdev/vdom"

// Compile-time assertion that MemoryRenderer implements Renderer.
var _ Renderer = (*MemoryRenderer)(nil)

// MemoryRenderer renders a root component into memory instead of the DOM.
// It runs the same Tree lifecycle as the browser renderer, which makes it
// the native stand-in for tests and for command-line rendering.
type MemoryRenderer struct {
	tree      *Tree
	component Component
	current   *vdom.VNode
	renders   int
}

// NewMemoryRenderer creates a renderer for comp.
func NewMemoryRenderer(comp Component) *MemoryRenderer {
	r := &MemoryRenderer{
		tree:      NewTree(),
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot runs a render cycle and returns the resulting tree.
// The first call mounts the component.
func (r *MemoryRenderer) RenderRoot() *vdom.VNode {
	r.tree.Cycle(r.renderOnce)
	return r.current
}

func (r *MemoryRenderer) renderOnce() {
	r.renders++
	if r.component == nil {
		r.current = nil
		return
	}
	r.current = r.tree.RenderChild(r, rootKey, r.component)
}

// ReRender implements Renderer.
func (r *MemoryRenderer) ReRender() {
	r.RenderRoot()
}

// RenderChild implements Renderer.
func (r *MemoryRenderer) RenderChild(key string, child Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, child)
}

// Unmount removes the component and every child it rendered, firing their
// OnUnmount hooks. Later StateHasChanged calls render nothing.
func (r *MemoryRenderer) Unmount() {
	r.component = nil
	r.tree.Clear()
	r.current = nil
}

// Current returns the most recently rendered tree.
func (r *MemoryRenderer) Current() *vdom.VNode {
	return r.current
}

// Instance returns the live child instance rendered under key.
func (r *MemoryRenderer) Instance(key string) (Component, bool) {
	return r.tree.Instance(key)
}

// RenderCount returns how many render passes have run.
func (r *MemoryRenderer) RenderCount() int {
	return r.renders
}

// Live returns the number of mounted component instances.
func (r *MemoryRenderer) Live() int {
	return r.tree.Len()
}
