package recurring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasonasher/eosim"
)

func TestRecurringScheduleNextIsEveryMinuteBoundary(t *testing.T) {
	sched, err := NewRecurringSchedule("* * * * *")
	require.NoError(t, err)

	next := sched.Next(0)
	require.Equal(t, eosim.Time(60), next)

	next2 := sched.Next(next)
	require.Equal(t, eosim.Time(120), next2)
}

func TestRecurringScheduleRejectsInvalidExpression(t *testing.T) {
	_, err := NewRecurringSchedule("not a cron expression")
	require.Error(t, err)
}

// TestScheduleRecurringSchedulesFirstOccurrence confirms the series is
// seeded correctly without running the loop to completion: a periodic
// series reschedules itself forever, so driving it through Run here
// would never halt.
func TestScheduleRecurringSchedulesFirstOccurrence(t *testing.T) {
	ctx := eosim.NewContext()

	id, err := ScheduleRecurring(ctx, "* * * * *", func(c *eosim.Context) {})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, 1, ctx.PendingPlanCount())
}

func TestScheduleRecurringCancelBeforeFirstOccurrenceStopsSeries(t *testing.T) {
	ctx := eosim.NewContext()
	fireCount := 0

	id, err := ScheduleRecurring(ctx, "* * * * *", func(c *eosim.Context) {
		fireCount++
	})
	require.NoError(t, err)

	// The id returned by ScheduleRecurring names the first occurrence;
	// cancelling it before it fires means nothing schedules a second
	// one, so the series never starts.
	ctx.Cancel(id)
	require.NoError(t, ctx.Run())
	require.Equal(t, 0, fireCount)
}
