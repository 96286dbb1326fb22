package models

import "time"

// Order statuses.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// Order is the persisted record of an authorized payment.
type Order struct {
	ID               string `gorm:"primarykey" json:"id"` // uuid
	SessionID        string `gorm:"index;not null" json:"session_id"`
	ProductID        uint   `gorm:"not null" json:"product_id"`
	ShippingOptionID string `json:"shipping_option_id"`
	AmountCents      int64  `gorm:"not null" json:"amount_cents"`
	Currency         string `gorm:"default:'USD'" json:"currency"`
	Status           string `gorm:"not null;default:'pending'" json:"status"`
	// ProcessorRef is the capture reference returned by the processor.
	ProcessorRef string    `json:"processor_ref"`
	Metadata     JSON      `gorm:"type:jsonb" json:"metadata"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
