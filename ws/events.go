package ws

import "github.com/cooper235/Canteen-project-sub000/entity"

const (
	EventOrderCreated       = "order:created"
	EventOrderStatusChanged = "order:statusChanged"
)

// Envelope is the wire shape of every server→client push.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// OrderCreatedPayload goes to the canteen room when a new order lands.
type OrderCreatedPayload struct {
	OrderID     uint   `json:"orderId"`
	OrderNumber uint   `json:"orderNumber"`
	Total       int64  `json:"total"`
	Summary     string `json:"summary"`
	Message     string `json:"message"`
}

// OrderStatusChangedPayload goes to both the canteen room and the buyer's
// personal room. Consumers treat it as a hint and refetch, not as a delta.
type OrderStatusChangedPayload struct {
	OrderID     uint               `json:"orderId"`
	OrderNumber uint               `json:"orderNumber"`
	NewStatus   entity.OrderStatus `json:"newStatus"`
	Message     string             `json:"message"`
}
