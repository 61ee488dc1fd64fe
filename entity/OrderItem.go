package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty int `json:"qty"`
	// UnitPrice is snapshotted from the live menu item at order creation.
	// Later price edits never touch historical orders.
	UnitPrice    int64  `json:"unitPrice"`
	Total        int64  `json:"total"`
	Instructions string `json:"instructions"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the item name is needed
}
