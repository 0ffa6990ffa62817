//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/noobdev/console"
)

// callOnMount invokes OnMount, recovering and logging a panic so one broken
// component cannot take down the whole page.
func callOnMount(m Mounter, key string) {
	defer recoverHook("OnMount", key)
	m.OnMount()
}

// callOnParametersSet invokes OnParametersSet, recovering and logging a panic.
func callOnParametersSet(p ParameterReceiver, key string) {
	defer recoverHook("OnParametersSet", key)
	p.OnParametersSet()
}

// callOnUnmount invokes OnUnmount, recovering and logging a panic.
func callOnUnmount(u Unmounter, key string) {
	defer recoverHook("OnUnmount", key)
	u.OnUnmount()
}

func recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec))
	}
}
