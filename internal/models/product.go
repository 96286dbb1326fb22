package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item shown in the product view.
type Product struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	SKU         string `gorm:"uniqueIndex;not null" json:"sku"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	// Price is the base total handed to the payment sheet before shipping.
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Currency  string          `gorm:"default:'USD'" json:"currency"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
