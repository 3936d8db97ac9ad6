package eosim

// Run executes the run loop to completion: it initializes every
// registered component in registration order, then repeatedly drains
// the immediate queue, pops the earliest live plan, advances the clock
// to its time, and invokes it, until both queues are empty.
//
// Run never invokes itself, and callbacks must never call Run; the
// loop is the only place time advances and the only place a plan is
// popped.
func (c *Context) Run() error {
	if c.started {
		return nil
	}
	c.started = true

	for _, component := range c.components {
		c.initComponent(component)
	}

	Publish(c, EventKernelStarted, struct{}{})

	for {
		c.drainImmediates()

		next, ok := c.plans.popNext()
		if !ok {
			break
		}

		c.clock.advanceTo(next.at)
		c.logger.Debug("plan firing", "plan_id", next.id, "time", next.at)
		Publish(c, EventPlanFired, PlanFiredPayload{PlanID: next.id, Time: next.at})
		next.fn(c)
	}

	c.halted = true
	c.logger.Info("run loop halted", "time", c.clock.Now())
	Publish(c, EventKernelHalted, KernelHaltedPayload{Time: c.clock.Now()})
	return nil
}

// drainImmediates repeatedly pops from the head of the immediate
// queue and invokes until it is empty, including entries appended by
// the callbacks it invokes along the way.
func (c *Context) drainImmediates() {
	for {
		fn, ok := c.immediates.popFront()
		if !ok {
			return
		}
		fn(c)
	}
}

// Halted reports whether the run loop has completed.
func (c *Context) Halted() bool {
	return c.halted
}
