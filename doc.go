// Package eosim provides a discrete-event simulation kernel for large
// agent-based models. It owns a virtual clock, a time-ordered plan queue,
// an immediate-callback queue, a typed event bus, and a heterogeneous
// registry of plugin-defined data containers.
//
// Extensions ("components") contribute logic and state through the
// Context façade rather than through direct references to one another:
// a component's Init is the only mandatory hook, and all later behavior
// is mediated by plans it schedules, events it subscribes to or
// publishes, and data containers it installs.
//
// Basic usage:
//
//	ctx := eosim.NewContext()
//	ctx.AddComponent(myComponent)
//	if err := ctx.Run(); err != nil {
//	    log.Fatal(err)
//	}
package eosim
