//go:build dev

package runtime

// In dev builds lifecycle panics propagate to aid debugging and fast failure.

func callOnMount(m Mounter, key string) {
	m.OnMount()
}

func callOnParametersSet(p ParameterReceiver, key string) {
	p.OnParametersSet()
}

func callOnUnmount(u Unmounter, key string) {
	u.OnUnmount()
}
