//go:build js && wasm

package events

import (
	"syscall/js"

	"github.com/vcrobe/noobdev/console"
)

// Window is the browser window as a ScrollSource.
type Window struct{}

var _ ScrollSource = Window{}

// OnScroll attaches a "scroll" listener to the global window. Releasing the
// subscription removes the listener and frees the js.Func.
func (Window) OnScroll(fn ScrollListener) *Subscription {
	win := js.Global()
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(win.Get("scrollY").Float())
		return nil
	})
	win.Call("addEventListener", "scroll", listener)
	console.Log("[Window] scroll listener registered")

	return NewSubscription(func() {
		win.Call("removeEventListener", "scroll", listener)
		listener.Release()
		console.Log("[Window] scroll listener cleaned up")
	})
}
