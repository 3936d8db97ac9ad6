package eosim

// Component is a registrable unit of simulation behavior. It exposes a
// single mandatory hook; all later behavior is mediated entirely by
// the plans it schedules, the events it subscribes to or publishes,
// and the data containers it installs through ctx, never by a direct
// reference to another component.
type Component interface {
	// Init is called once, in registration order, synchronously,
	// before the run loop's first plan fires (or immediately, if the
	// loop has already started when the component is added).
	Init(ctx *Context)
}

// Named is an optional interface a Component can implement to report a
// human-readable name for logging and introspection. Components that
// don't implement it are logged by their registration index instead.
type Named interface {
	Name() string
}
