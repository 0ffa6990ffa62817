package testcomponents

import (
	"github.com/vcrobe/noobdev/runtime"
	"github.com/vcrobe/noobdev/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It drives the same runtime.Tree as the browser renderer, so lifecycle
// hooks (OnMount, OnParametersSet, OnUnmount) fire exactly as they would
// in a page. Tests can:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and count renders
// - Unmount the component and assert its cleanup
type TestRenderer struct {
	*runtime.MemoryRenderer
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	return &TestRenderer{MemoryRenderer: runtime.NewMemoryRenderer(comp)}
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.Current()
}
