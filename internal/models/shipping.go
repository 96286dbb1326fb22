package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingOption is a user-selectable shipping method. Options are seeded at
// startup and treated as immutable afterwards; every selectable option must
// carry a non-negative surcharge.
type ShippingOption struct {
	ID          string `gorm:"primarykey" json:"id"` // e.g. "shipping-001"
	Label       string `gorm:"not null" json:"label"`
	Description string `json:"description"`
	// Surcharge is added to the base total when this option is selected.
	Surcharge decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"surcharge"`
	SortOrder int             `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
