package eosim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type populationCounter struct {
	count int
}

func TestGetOrInitConstructsOnce(t *testing.T) {
	ctx := NewContext()
	calls := 0

	v1 := GetOrInit(ctx, "population", func() *populationCounter {
		calls++
		return &populationCounter{}
	})
	v1.count = 42

	v2 := GetOrInit(ctx, "population", func() *populationCounter {
		calls++
		return &populationCounter{}
	})

	require.Equal(t, 1, calls)
	require.Same(t, v1, v2)
	require.Equal(t, 42, v2.count)
}

func TestGetReturnsFalseWhenUninitialized(t *testing.T) {
	ctx := NewContext()
	_, ok := Get[populationCounter](ctx, "population")
	require.False(t, ok)
}

func TestGetReturnsTrueAfterInit(t *testing.T) {
	ctx := NewContext()
	GetOrInit(ctx, "population", func() *populationCounter { return &populationCounter{count: 7} })

	v, ok := Get[populationCounter](ctx, "population")
	require.True(t, ok)
	require.Equal(t, 7, v.count)
}

func TestContainerTagTypeMismatchPanics(t *testing.T) {
	ctx := NewContext()
	GetOrInit(ctx, "slot", func() *populationCounter { return &populationCounter{} })

	require.Panics(t, func() {
		GetOrInit(ctx, "slot", func() *int { v := 0; return &v })
	})
}

func TestContainerTags(t *testing.T) {
	ctx := NewContext()
	require.Empty(t, ctx.ContainerTags())

	GetOrInit(ctx, "a", func() *int { v := 0; return &v })
	GetOrInit(ctx, "b", func() *int { v := 0; return &v })

	require.ElementsMatch(t, []string{"a", "b"}, ctx.ContainerTags())
}
