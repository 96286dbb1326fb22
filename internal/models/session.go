package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checkout session states. A session is created on a successful readiness
// check and discarded when the sheet closes or payment completes.
const (
	SessionStateIdle             = "idle"
	SessionStateReadinessChecked = "readiness_checked"
	SessionStateButtonShown      = "button_shown"
	SessionStateSheetOpen        = "sheet_open"
	SessionStateAuthorized       = "authorized"
	SessionStateCancelled        = "cancelled"
	SessionStateFailed           = "failed"
)

// CheckoutSession is the per-checkout state owned by the coordinator.
// It replaces the global client handle of callback-style integrations:
// every handler receives the session explicitly.
type CheckoutSession struct {
	ID        string          `json:"id"`
	ProductID uint            `json:"product_id"`
	BaseTotal decimal.Decimal `json:"base_total"`
	Currency  string          `json:"currency"`
	State     string          `json:"state"`
	// SelectedShippingOptionID is the last option the user picked in the sheet.
	SelectedShippingOptionID string `json:"selected_shipping_option_id,omitempty"`
	// Transaction is the latest price summary shown in the sheet.
	Transaction *TransactionInfo `json:"transaction,omitempty"`
	// LastOutcome records why the previous sheet attempt ended (cancel, error).
	LastOutcome string    `json:"last_outcome,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
