package checkout

import (
	"context"
	"time"

	"swagshop/internal/models"
	"swagshop/internal/pricing"
	"swagshop/internal/services/processor"
)

// Service is the payment session coordinator. It sequences the readiness
// check, the sheet invocation and the result handling, and routes every
// in-sheet event through the session state machine.
type Service interface {
	// CreateSession runs the readiness check and, on an affirmative result,
	// creates a session with the call-to-action shown. A negative result is
	// ErrPaymentNotReady: no button, user-visible notice, no retry.
	CreateSession(ctx context.Context, productID uint) (*models.CheckoutSession, error)

	GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)

	// OpenSheet handles the button click: it builds the payment request
	// payload handed to the external SDK.
	OpenSheet(ctx context.Context, sessionID string) (*models.PaymentDataRequest, error)

	// ShippingOptionChanged recomputes the price breakdown for a new shipping
	// selection. An unknown option id is pricing.ErrUnknownShippingOption.
	ShippingOptionChanged(ctx context.Context, sessionID, optionID string) (models.PaymentDataRequestUpdate, error)

	// SheetClosed handles a sheet closed without payment (CANCELED or
	// DEVELOPER_ERROR); the session returns to the button for retry.
	SheetClosed(ctx context.Context, sessionID, statusCode string) (*models.CheckoutSession, error)

	// Authorize handles a successful authorization: it captures the payment
	// through the processor and persists the order.
	Authorize(ctx context.Context, sessionID string, data models.PaymentData) (models.AuthorizationResult, *models.Order, error)

	// RunSheet drives a full sheet interaction through the SDK client's
	// LoadPaymentData, with callbacks routed back into this coordinator.
	RunSheet(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
}

// Dependencies required by the checkout service

// CatalogService provides the product and shipping configuration.
type CatalogService interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListShippingOptions(ctx context.Context) ([]models.ShippingOption, error)
	SurchargeTable(ctx context.Context) (pricing.SurchargeTable, error)
}

// SessionStore persists sessions with a TTL for the sheet's lifetime.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.CheckoutSession, ttl time.Duration) error
	GetSession(ctx context.Context, id string) (*models.CheckoutSession, bool, error)
	DeleteSession(ctx context.Context, id string) error
}

// Processor captures authorized payments.
type Processor interface {
	Capture(ctx context.Context, token string, amountCents int64, description string) (*processor.Receipt, error)
}

// OrderRecorder persists completed checkouts.
type OrderRecorder interface {
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id, status, processorRef string) error
}
