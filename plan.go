package eosim

import "github.com/google/uuid"

// PlanID opaquely identifies a scheduled plan. It is minted at
// schedule time, never reused within a context's lifetime, and is the
// only handle Cancel accepts.
type PlanID string

// newPlanID mints a fresh, unique plan identifier.
func newPlanID() PlanID {
	return PlanID(uuid.NewString())
}

// PlanFunc is the signature every scheduled callback must satisfy.
// Implementations must not retain ctx or any value obtained through it
// past their own invocation: the next callback the run loop invokes
// expects exclusive access to everything ctx exposes.
type PlanFunc func(ctx *Context)

// plan is one entry in the plan queue: a callback to run at time at,
// tagged with a monotonically increasing seq minted at schedule time
// so that plans scheduled for the same time fire in schedule order.
type plan struct {
	id    PlanID
	at    Time
	seq   uint64
	fn    PlanFunc
	alive bool // cleared by cancel, which also removes the plan from the heap
	index int // current position in the heap, maintained by container/heap
}
