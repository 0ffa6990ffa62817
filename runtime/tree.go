package runtime

import (
	"sort"

	"github.com/vcrobe/noobdev/vdom"
)

// Tree tracks component instances by key across render cycles. It carries
// no build tags: the browser renderer and the test renderer both delegate
// instance reuse and lifecycle bookkeeping to it.
//
// Within a cycle every RenderChild marks its key active. When the cycle
// ends, instances first seen in it receive OnMount and instances whose key
// was not rendered receive OnUnmount and are dropped. An instance is
// therefore mounted at most once and unmounted at most once.
type Tree struct {
	instances map[string]Component
	mounted   map[string]bool
	active    map[string]bool
	pending   []string

	inCycle bool
	again   bool
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{
		instances: make(map[string]Component),
		mounted:   make(map[string]bool),
		active:    make(map[string]bool),
	}
}

// Cycle runs one render pass. render produces the tree by calling
// RenderChild; lifecycle hooks are flushed afterwards. A cycle requested
// while one is running (a hook calling StateHasChanged, say) is not nested:
// the running cycle repeats once it has finished flushing.
func (t *Tree) Cycle(render func()) {
	if t.inCycle {
		t.again = true
		return
	}
	t.inCycle = true
	defer func() { t.inCycle = false }()

	for {
		t.again = false
		t.active = make(map[string]bool)
		render()
		t.flush()
		if !t.again {
			return
		}
	}
}

// RenderChild renders the instance stored under key, creating it from
// childWithProps the first time the key is seen. Later calls keep the live
// instance, and with it its state, applying the new props via PropUpdater.
func (t *Tree) RenderChild(r Renderer, key string, childWithProps Component) *vdom.VNode {
	t.active[key] = true

	instance, exists := t.instances[key]
	if !exists {
		instance = childWithProps
		t.instances[key] = instance
		t.pending = append(t.pending, key)
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if receiver, ok := instance.(ParameterReceiver); ok {
		callOnParametersSet(receiver, key)
	}
	return instance.Render(r)
}

// Clear unmounts every instance.
func (t *Tree) Clear() {
	t.Cycle(func() {})
}

// Instance returns the live instance stored under key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

// Len returns the number of live instances.
func (t *Tree) Len() int {
	return len(t.instances)
}

func (t *Tree) flush() {
	// Unmount before mount so a key that was dropped and re-added within
	// one pass never has two live listeners.
	var gone []string
	for key := range t.instances {
		if !t.active[key] {
			gone = append(gone, key)
		}
	}
	sort.Strings(gone)
	for _, key := range gone {
		instance := t.instances[key]
		delete(t.instances, key)
		if t.mounted[key] {
			delete(t.mounted, key)
			if u, ok := instance.(Unmounter); ok {
				callOnUnmount(u, key)
			}
		}
	}

	pending := t.pending
	t.pending = nil
	for _, key := range pending {
		instance, ok := t.instances[key]
		if !ok || t.mounted[key] {
			continue
		}
		t.mounted[key] = true
		if m, ok := instance.(Mounter); ok {
			callOnMount(m, key)
		}
	}
}
