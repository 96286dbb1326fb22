package models

import "time"

// Merchant holds the storefront's identity with the payment SDK and the
// credentials for the admin API. There is a single merchant per deployment.
type Merchant struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	// GatewayMerchantID is the id registered with the external payment SDK.
	GatewayMerchantID string `gorm:"not null" json:"gateway_merchant_id"`
	// APIKeyHash is the bcrypt hash of the admin API key; the plaintext key is
	// printed once by the seed command and never stored.
	APIKeyHash string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
