// Package recurring lets a component schedule a plan on a repeating
// cadence expressed as a standard cron expression, interpreted against
// simulated time rather than wall-clock time: simulated time 0 is
// treated as the virtual epoch 1970-01-01T00:00:00Z, and one simulated
// time unit is treated as one second when evaluating the cron
// expression's minute/hour/day-of-month/month/day-of-week fields. This
// is the same robfig/cron schedule-computation machinery a wall-clock
// job scheduler uses, retargeted at a clock the caller fully controls.
package recurring

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jasonasher/eosim"
)

// virtualEpoch is the wall-clock instant simulated time 0 maps to.
var virtualEpoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// RecurringSchedule wraps a parsed standard 5-field cron expression
// and computes its occurrences in simulated time.
type RecurringSchedule struct {
	cronSchedule cron.Schedule
}

// NewRecurringSchedule parses a standard cron expression (minute hour
// dom month dow).
func NewRecurringSchedule(expr string) (*RecurringSchedule, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, err
	}
	return &RecurringSchedule{cronSchedule: sched}, nil
}

// Next returns the next simulated-time occurrence strictly after
// after.
func (r *RecurringSchedule) Next(after eosim.Time) eosim.Time {
	wallAfter := virtualEpoch.Add(time.Duration(float64(after) * float64(time.Second)))
	wallNext := r.cronSchedule.Next(wallAfter)
	return eosim.Time(wallNext.Sub(virtualEpoch).Seconds())
}

// ScheduleRecurring schedules callback's first occurrence after
// ctx.Now(), and each time an occurrence fires it runs callback and
// then schedules the next occurrence, unconditionally. The returned
// PlanID names the first occurrence only. Cancelling it before that
// occurrence fires stops the whole series, because nothing else
// schedules the next occurrence; once the first occurrence has fired,
// cancelling it is a no-op, later occurrences carry ids that are not
// returned, and callback has no way to end the series.
func ScheduleRecurring(ctx *eosim.Context, expr string, callback eosim.PlanFunc) (eosim.PlanID, error) {
	sched, err := NewRecurringSchedule(expr)
	if err != nil {
		return "", err
	}

	var wrapped eosim.PlanFunc
	wrapped = func(c *eosim.Context) {
		callback(c)
		next := sched.Next(c.Now())
		// Schedule errors here would mean next <= c.Now(), which
		// cannot happen: Next always returns a time strictly after
		// its argument, and the argument is c.Now() at the moment of
		// firing.
		_, _ = c.Schedule(next, wrapped)
	}

	first := sched.Next(ctx.Now())
	return ctx.Schedule(first, wrapped)
}
