package eosim

import "fmt"

// Time is simulated time: a non-negative real value, never quantized
// to an integer tick. Floating point lets a single context mix
// sub-second event spacing with multi-day horizons without forcing a
// global unit choice up front.
type Time float64

func (t Time) String() string {
	return fmt.Sprintf("%g", float64(t))
}

// clock holds the context's current simulated time. It never runs
// backward: advanceTo is the only mutator and it rejects any value
// earlier than the current reading.
type clock struct {
	now Time
}

func (c *clock) Now() Time {
	return c.now
}

// advanceTo moves the clock forward to t. Callers must ensure t is not
// earlier than the current time; use ErrTimeWentBackward in the
// scheduling path, not here, so the error can be attributed to the
// plan that caused it.
func (c *clock) advanceTo(t Time) {
	if t < c.now {
		panic(fmt.Sprintf("eosim: clock.advanceTo called with t=%v < now=%v (caller must pre-validate)", t, c.now))
	}
	c.now = t
}
