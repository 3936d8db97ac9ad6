package eosim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClockAdvance(t *testing.T) {
	var c clock
	require.Equal(t, Time(0), c.Now())

	c.advanceTo(1.5)
	require.Equal(t, Time(1.5), c.Now())

	c.advanceTo(1.5)
	require.Equal(t, Time(1.5), c.Now())
}

func TestClockAdvanceBackwardPanics(t *testing.T) {
	var c clock
	c.advanceTo(2)
	require.Panics(t, func() { c.advanceTo(1) })
}
