package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// OrderNumber is sequential per deployment, display only.
	OrderNumber uint `gorm:"uniqueIndex" json:"orderNumber"`

	Status        OrderStatus   `gorm:"not null;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:unpaid" json:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod"`

	FulfilmentType FulfilmentType `gorm:"not null;default:pickup" json:"fulfilmentType"`
	Request        string         `json:"request"`

	// Total is computed once at creation from snapshotted line prices.
	Total int64 `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for detail

	CanteenID uint    `json:"canteenId"`
	Canteen   Canteen `json:"-"`

	Items []OrderItem `json:"items"`

	Reviews []Review `json:"-"`
}
