package entity

import (
	"gorm.io/gorm"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Sentiment labels from the external classifier; SentimentNeutral doubles as
// the degrade-on-failure default.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

type Review struct {
	gorm.Model
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	Status    ReviewStatus `gorm:"not null;default:approved" json:"status"`
	Sentiment string       `gorm:"not null;default:neutral" json:"sentiment"`

	// True only when OrderID points at a completed order owned by the author.
	VerifiedPurchase bool  `json:"verifiedPurchase"`
	HelpfulCount     int64 `json:"helpfulCount"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	// At least one of MenuItemID / CanteenID is required.
	MenuItemID *uint     `json:"menuItemId,omitempty"`
	MenuItem   *MenuItem `json:"-"`
	CanteenID  *uint     `json:"canteenId,omitempty"`
	Canteen    *Canteen  `json:"-"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
