package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name      string `json:"name"`
	Detail    string `json:"detail"`
	Price     int64  `json:"price"`
	Available bool   `gorm:"not null;default:true" json:"available"`

	// Materialized rating aggregate, owned by services.RatingService.
	AvgRating   float64 `json:"avgRating"`
	RatingCount int64   `json:"ratingCount"`

	CanteenID uint    `json:"canteenId"`
	Canteen   Canteen `json:"-"`

	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`
}
