package eosim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingComponent struct {
	name    string
	initLog *[]string
}

func (c *recordingComponent) Init(ctx *Context) {
	*c.initLog = append(*c.initLog, c.name)
}

func (c *recordingComponent) Name() string { return c.name }

func TestAddComponentBeforeRunInitializesInRegistrationOrder(t *testing.T) {
	ctx := NewContext()
	var initOrder []string

	ctx.AddComponent(&recordingComponent{name: "first", initLog: &initOrder})
	ctx.AddComponent(&recordingComponent{name: "second", initLog: &initOrder})

	require.Empty(t, initOrder, "Init must not run before Run starts the loop")

	require.NoError(t, ctx.Run())
	require.Equal(t, []string{"first", "second"}, initOrder)
}

func TestAddComponentAfterRunInitializesImmediately(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Run())

	var initOrder []string
	ctx.AddComponent(&recordingComponent{name: "late", initLog: &initOrder})

	require.Equal(t, []string{"late"}, initOrder)
}

func TestIntrospectionAccessorsReflectKernelState(t *testing.T) {
	ctx := NewContext()

	_, err := ctx.Schedule(1, func(*Context) {})
	require.NoError(t, err)
	require.Equal(t, 1, ctx.PendingPlanCount())

	GetOrInit(ctx, "population", func() *int { v := 0; return &v })
	require.ElementsMatch(t, []string{"population"}, ctx.ContainerTags())

	Subscribe(ctx, "E", Observer, func(*Context, int) {})
	Subscribe(ctx, "E", Queued, func(*Context, int) {})
	stats := ctx.SubscriberCounts()
	require.Equal(t, EventBusStats{Observers: 1, Queued: 1}, stats["E"])
}
