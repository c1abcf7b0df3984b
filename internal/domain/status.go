package domain

import (
	"errors"
	"fmt"
)

var ErrBadAction = errors.New("invalid action")

type Action string

const (
	ActionNext       Action = "next"
	ActionCancel     Action = "cancel"
	ActionDispatched Action = "despachado"
	ActionDelivered  Action = "entregado"
	ActionPickedUp   Action = "retirado"
	// ActionSetPaid toggles the payment flag and never reaches Advance.
	ActionSetPaid Action = "set_paid"
)

var autoAdvance = map[OrderStatus]OrderStatus{
	StatusNew:       StatusPreparing,
	StatusPreparing: StatusReady,
}

// Advance returns the status an order moves to when action is applied.
// Only "next" depends on the current status; the hand-over actions and
// "cancel" overwrite whatever the order was in.
func Advance(current OrderStatus, action Action) (OrderStatus, error) {
	switch action {
	case ActionNext:
		next, ok := autoAdvance[current]
		if !ok {
			return "", fmt.Errorf("%w: %q from status %q", ErrBadAction, action, current)
		}
		return next, nil
	case ActionCancel:
		return StatusCancelled, nil
	case ActionDispatched:
		return StatusDispatched, nil
	case ActionDelivered:
		return StatusDelivered, nil
	case ActionPickedUp:
		return StatusPickedUp, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadAction, action)
}
