package entity

import (
	"gorm.io/gorm"
)

type Canteen struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Open        bool   `gorm:"not null;default:true" json:"open"`

	// Materialized rating aggregate, owned by services.RatingService.
	AvgRating   float64 `json:"avgRating"`
	RatingCount int64   `json:"ratingCount"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Menu    []MenuItem `json:"-"`
	Orders  []Order    `json:"-"`
	Reviews []Review   `json:"-"`
}
