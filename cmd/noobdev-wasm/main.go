//go:build js && wasm

package main

import (
	"github.com/vcrobe/noobdev/components"
	"github.com/vcrobe/noobdev/console"
	"github.com/vcrobe/noobdev/events"
	"github.com/vcrobe/noobdev/runtime"
	"github.com/vcrobe/noobdev/site"
)

func main() {
	// 1. The host owns the current page.
	state := site.NewState(site.Home)

	// 2. The persistent chrome, listening to the browser window for scroll.
	layout := &components.Layout{
		State:  state,
		Window: events.Window{},
	}

	// 3. Create the Renderer and mount the chrome.
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(layout)
	renderer.RenderRoot()

	state.Subscribe(func(p site.Page) {
		console.Log("[main] page changed:", string(p))
	})

	// Keep the Go program running
	select {}
}
