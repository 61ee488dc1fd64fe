package services

import (
	"github.com/cooper235/Canteen-project-sub000/entity"
)

// nextStatus is the single source of truth for the happy path. A status with
// no entry has no legal successor. Callers never pick a target status
// themselves, which is what makes skipping impossible.
var nextStatus = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderPending:   entity.OrderConfirmed,
	entity.OrderConfirmed: entity.OrderPreparing,
	entity.OrderPreparing: entity.OrderReady,
	entity.OrderReady:     entity.OrderCompleted,
}

// NextStatus returns the sole legal successor of s, or false from a terminal
// or unknown status.
func NextStatus(s entity.OrderStatus) (entity.OrderStatus, bool) {
	to, ok := nextStatus[s]
	return to, ok
}

// Terminal reports whether no further transition is legal.
func Terminal(s entity.OrderStatus) bool {
	return s == entity.OrderCompleted || s == entity.OrderCancelled
}

// Cancellable: any known non-terminal state may be cancelled.
func Cancellable(s entity.OrderStatus) bool {
	_, ok := nextStatus[s]
	return ok
}
