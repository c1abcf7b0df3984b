package domain

import "time"

// Routing keys for order events.
const (
	EventOrderCreated        = "order.created"
	EventOrderUpdated        = "order.updated"
	EventOrderStatusChanged  = "order.status_changed"
	EventOrderPaymentChanged = "order.payment_changed"
)

type OrderEvent struct {
	OrderID    uint64      `json:"orderId"`
	Status     OrderStatus `json:"estado"`
	Previous   OrderStatus `json:"estadoAnterior,omitempty"`
	Paid       bool        `json:"pagado"`
	Total      int64       `json:"montoTotalClp"`
	OccurredAt time.Time   `json:"occurredAt"`
}

func NewOrderEvent(o *Order, previous OrderStatus, at time.Time) OrderEvent {
	return OrderEvent{
		OrderID:    o.ID,
		Status:     o.Status,
		Previous:   previous,
		Paid:       o.Paid,
		Total:      o.Total,
		OccurredAt: at,
	}
}
