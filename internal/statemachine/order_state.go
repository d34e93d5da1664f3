package statemachine

import (
	"fmt"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

// transitions is the authoritative table of legal order status changes. An
// order advances pending → confirmed → preparing → ready → picked_up →
// delivered; cancellation is reachable from any non-terminal state.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:   {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed: {model.OrderStatusPreparing, model.OrderStatusCancelled},
	model.OrderStatusPreparing: {model.OrderStatusReady, model.OrderStatusCancelled},
	model.OrderStatusReady:     {model.OrderStatusPickedUp, model.OrderStatusCancelled},
	model.OrderStatusPickedUp:  {model.OrderStatusDelivered, model.OrderStatusCancelled},
	model.OrderStatusDelivered: nil,
	model.OrderStatusCancelled: nil,
}

// NextStates returns all legal next states from a given state.
func NextStates(from model.OrderStatus) []model.OrderStatus {
	next := transitions[from]
	out := make([]model.OrderStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no transition leaves the state.
func IsTerminal(s model.OrderStatus) bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransition reports whether an order may move from one state to another.
// The store does not call this on writes; it is for the service driving the
// order workflow.
func CanTransition(from, to model.OrderStatus) error {
	if !from.Valid() {
		return fmt.Errorf("%w: order status %q is not a declared status", errs.ErrDomainViolation, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: order status %q is not a declared status", errs.ErrDomainViolation, to)
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	if IsTerminal(from) {
		return fmt.Errorf("%w: %s is terminal", errs.ErrDomainViolation, from)
	}
	return fmt.Errorf("%w: cannot move from %s to %s", errs.ErrDomainViolation, from, to)
}
