package services

import (
	"testing"

	"github.com/cooper235/Canteen-project-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusHappyPath(t *testing.T) {
	want := []entity.OrderStatus{
		entity.OrderPending,
		entity.OrderConfirmed,
		entity.OrderPreparing,
		entity.OrderReady,
		entity.OrderCompleted,
	}

	s := want[0]
	for i := 1; i < len(want); i++ {
		next, ok := NextStatus(s)
		require.True(t, ok, "expected successor from %s", s)
		assert.Equal(t, want[i], next)
		s = next
	}

	// completed has no successor
	_, ok := NextStatus(s)
	assert.False(t, ok)
}

func TestNextStatusTerminalAndUnknown(t *testing.T) {
	for _, s := range []entity.OrderStatus{entity.OrderCompleted, entity.OrderCancelled, "bogus"} {
		_, ok := NextStatus(s)
		assert.False(t, ok, "no successor from %s", s)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(entity.OrderCompleted))
	assert.True(t, Terminal(entity.OrderCancelled))
	for _, s := range []entity.OrderStatus{entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing, entity.OrderReady} {
		assert.False(t, Terminal(s), "%s is not terminal", s)
	}
}

func TestCancellable(t *testing.T) {
	for _, s := range []entity.OrderStatus{entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing, entity.OrderReady} {
		assert.True(t, Cancellable(s), "%s should be cancellable", s)
	}
	assert.False(t, Cancellable(entity.OrderCompleted))
	assert.False(t, Cancellable(entity.OrderCancelled))
	assert.False(t, Cancellable("bogus"))
}
