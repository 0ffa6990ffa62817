package runtime

// Mounter is implemented by components that acquire resources once they are
// part of the rendered tree. OnMount runs after the first render that
// includes the instance.
type Mounter interface {
	OnMount()
}

// ParameterReceiver is implemented by components that derive state from
// their props. OnParametersSet runs before every render of the instance.
type ParameterReceiver interface {
	OnParametersSet()
}

// Unmounter is implemented by components that must release resources.
// OnUnmount runs once, after the first render cycle that no longer includes
// the instance.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater is implemented by components whose instance is reused across
// parent renders. ApplyProps receives the freshly constructed component the
// parent passed to RenderChild and copies its props onto the live instance.
type PropUpdater interface {
	ApplyProps(next Component)
}
