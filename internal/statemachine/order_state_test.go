package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

func TestCanTransitionHappyPath(t *testing.T) {
	path := []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusConfirmed,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
		model.OrderStatusPickedUp,
		model.OrderStatusDelivered,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, CanTransition(path[i], path[i+1]), "%s -> %s", path[i], path[i+1])
	}
}

func TestCanTransitionCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusConfirmed,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
		model.OrderStatusPickedUp,
	} {
		assert.NoError(t, CanTransition(from, model.OrderStatusCancelled), string(from))
	}
}

func TestCanTransitionRejectsIllegalMoves(t *testing.T) {
	tests := []struct {
		name string
		from model.OrderStatus
		to   model.OrderStatus
	}{
		{name: "skipping ahead", from: model.OrderStatusPending, to: model.OrderStatusPreparing},
		{name: "moving backwards", from: model.OrderStatusReady, to: model.OrderStatusConfirmed},
		{name: "leaving delivered", from: model.OrderStatusDelivered, to: model.OrderStatusCancelled},
		{name: "leaving cancelled", from: model.OrderStatusCancelled, to: model.OrderStatusPending},
		{name: "unknown from", from: model.OrderStatus("shipped"), to: model.OrderStatusConfirmed},
		{name: "unknown to", from: model.OrderStatusPending, to: model.OrderStatus("shipped")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CanTransition(tt.from, tt.to), errs.ErrDomainViolation)
		})
	}
}

func TestNextStates(t *testing.T) {
	assert.ElementsMatch(t,
		[]model.OrderStatus{model.OrderStatusConfirmed, model.OrderStatusCancelled},
		NextStates(model.OrderStatusPending))
	assert.Empty(t, NextStates(model.OrderStatusDelivered))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(model.OrderStatusDelivered))
	assert.True(t, IsTerminal(model.OrderStatusCancelled))
	assert.False(t, IsTerminal(model.OrderStatusPending))
	assert.False(t, IsTerminal(model.OrderStatus("shipped")))
}
