//go:build js && wasm

package runtime

import (
	"github.com/vcrobe/noobdev/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It owns the component tree and patches the mounted DOM on every cycle.
type RendererImpl struct {
	tree             *Tree
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode
}

// NewRenderer creates a renderer that mounts into the element matching mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		tree:    NewTree(),
		mountID: mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot runs a render cycle for the root component.
func (r *RendererImpl) RenderRoot() {
	r.tree.Cycle(r.renderOnce)
}

func (r *RendererImpl) renderOnce() {
	var next *vdom.VNode
	if r.currentComponent != nil {
		next = r.tree.RenderChild(r, rootKey, r.currentComponent)
	}
	vdom.Patch(r.mountID, r.prevVDOM, next)
	r.prevVDOM = next
}

// RenderChild implements Renderer.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, childWithProps)
}

// ReRender implements Renderer.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Unmount tears the application down: every component is unmounted and the
// mount element emptied.
func (r *RendererImpl) Unmount() {
	r.currentComponent = nil
	r.RenderRoot()
}
