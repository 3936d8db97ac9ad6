package eosim

import "strconv"

// Context is the single object threaded through every callback. It
// owns the clock, plan queue, immediate queue, event bus, and data
// container registry, and is the sole channel through which
// components communicate; they never hold references to one
// another.
//
// A Context is not safe for concurrent use: exactly one callback holds
// it at a time, by the cooperative single-threaded discipline the run
// loop enforces. Callbacks must not retain ctx, or anything obtained
// through it, past their own invocation.
type Context struct {
	clock      clock
	plans      *planQueue
	immediates *immediateQueue
	bus        *eventBus
	containers *containerRegistry
	logger     Logger

	components []Component
	started    bool
	halted     bool
}

// NewContext builds an empty Context with a no-op logger. Use
// NewContextWithConfig to supply a Logger and KernelConfig tuning
// hints.
func NewContext() *Context {
	return NewContextWithConfig(KernelConfig{}, noopLogger{})
}

// NewContextWithConfig builds a Context using cfg's capacity hints and
// logger for kernel diagnostics. A nil logger is replaced by a no-op
// logger.
func NewContextWithConfig(cfg KernelConfig, logger Logger) *Context {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Context{
		plans:      newPlanQueue(cfg.PlanQueueCapacityHint),
		immediates: newImmediateQueue(cfg.ImmediateQueueCapacityHint),
		bus:        newEventBus(logger),
		containers: newContainerRegistry(cfg.ContainerMapSizeHint),
		logger:     logger,
	}
}

// Now returns the current simulated time.
func (c *Context) Now() Time {
	return c.clock.Now()
}

// Schedule inserts a plan to fire at time at, returning its id. at
// must not be earlier than Now(); otherwise Schedule returns
// ErrTimeWentBackward wrapped in a *PlanError and does not change any
// state.
func (c *Context) Schedule(at Time, fn PlanFunc) (PlanID, error) {
	if at < c.clock.Now() {
		c.logger.Error("schedule rejected", "time", at, "now", c.clock.Now(), "error", ErrTimeWentBackward)
		return "", &PlanError{Time: at, Err: ErrTimeWentBackward}
	}
	id := c.plans.schedule(at, fn)
	c.logger.Debug("plan scheduled", "plan_id", id, "time", at)
	Publish(c, EventPlanScheduled, PlanScheduledPayload{PlanID: id, Time: at})
	return id, nil
}

// Cancel marks the plan id inactive. It is idempotent: calling it
// twice, or calling it on an id that has already fired (including the
// plan currently executing, per the self-cancellation resolution), is
// a silent no-op. EventPlanCancelled is only published when there was
// something live to remove.
func (c *Context) Cancel(id PlanID) {
	if !c.plans.cancel(id) {
		return
	}
	c.logger.Debug("plan cancelled", "plan_id", id)
	Publish(c, EventPlanCancelled, PlanCancelledPayload{PlanID: id})
}

// EnqueueImmediate appends fn to the immediate queue. It may be called
// from anywhere inside a running callback, including from inside
// another immediate; the run loop's drain keeps processing until the
// queue is empty, so nested immediates still run before the next plan.
func (c *Context) EnqueueImmediate(fn PlanFunc) {
	c.immediates.enqueue(func(ctx *Context) { fn(ctx) })
}

// AddComponent registers component. If the run loop has not started
// yet, Init is deferred to loop start and runs in registration order
// alongside every other component added before Run. If the loop has
// already started, Init runs immediately, synchronously, before
// AddComponent returns.
func (c *Context) AddComponent(component Component) {
	c.components = append(c.components, component)
	if c.started {
		c.initComponent(component)
		return
	}
}

func (c *Context) initComponent(component Component) {
	name := componentName(component, len(c.components)-1)
	c.logger.Info("component init", "component", name)
	component.Init(c)
}

func componentName(component Component, index int) string {
	if n, ok := component.(Named); ok {
		return n.Name()
	}
	return "component[" + strconv.Itoa(index) + "]"
}

// PendingPlanCount reports how many live plans remain in the queue.
// Additive introspection accessor; never mutates kernel state.
func (c *Context) PendingPlanCount() int {
	return c.plans.len()
}

// PendingImmediateCount reports how many immediates remain queued.
func (c *Context) PendingImmediateCount() int {
	return c.immediates.len()
}

// ContainerTags reports the tags that have been initialized so far.
func (c *Context) ContainerTags() []string {
	return c.containers.ContainerTags()
}

// SubscriberCounts reports, per event-type tag, the number of Observer
// and Queued subscribers currently registered.
func (c *Context) SubscriberCounts() map[string]EventBusStats {
	return c.bus.SubscriberCounts()
}
