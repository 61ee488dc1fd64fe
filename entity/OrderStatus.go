package entity

// OrderStatus is the fixed order lifecycle enum. Transitions are owned by
// services/order_transitions.go; nothing else writes Order.Status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus is set independently of the order lifecycle.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type FulfilmentType string

const (
	FulfilPickup   FulfilmentType = "pickup"
	FulfilDelivery FulfilmentType = "delivery"
)
