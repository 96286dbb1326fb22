// Package paysdk defines the contract of the external payment SDK this
// service consumes. Tokenization, authorization and transport to the payment
// network are the vendor's responsibility; the service only issues the
// readiness check, hands over the payment request, and reacts to callbacks.
package paysdk

import (
	"context"
	"errors"
	"fmt"

	"swagshop/internal/models"
)

// Callback triggers reported while the sheet is open.
const (
	TriggerShippingOption = "SHIPPING_OPTION"
)

// Client is the external payment SDK surface.
type Client interface {
	// IsReadyToPay reports whether the user's device can complete a payment.
	IsReadyToPay(ctx context.Context, req models.ReadyToPayRequest) (bool, error)

	// LoadPaymentData opens the payment sheet. Callbacks are delivered
	// strictly sequentially until the user authorizes or closes the sheet.
	LoadPaymentData(ctx context.Context, req models.PaymentDataRequest, cb Callbacks) (*models.PaymentData, error)
}

// IntermediatePaymentData is the payload of an in-sheet change event.
type IntermediatePaymentData struct {
	CallbackTrigger          string `json:"callbackTrigger"`
	SelectedShippingOptionID string `json:"selectedShippingOptionId"`
}

// Callbacks hook the coordinator into the open sheet.
type Callbacks struct {
	OnPaymentDataChanged func(ctx context.Context, event IntermediatePaymentData) (models.PaymentDataRequestUpdate, error)
	OnPaymentAuthorized  func(ctx context.Context, data models.PaymentData) models.AuthorizationResult
}

// SheetError is returned by LoadPaymentData when the sheet closes without a
// successful payment.
type SheetError struct {
	StatusCode string // CANCELED or DEVELOPER_ERROR
	Message    string
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("payment sheet closed: %s: %s", e.StatusCode, e.Message)
}

// IsCanceled reports whether err is a user-cancelled sheet.
func IsCanceled(err error) bool {
	var se *SheetError
	return errors.As(err, &se) && se.StatusCode == models.SheetStatusCanceled
}

// IsDeveloperError reports whether err is a configuration fault surfaced by
// the SDK.
func IsDeveloperError(err error) bool {
	var se *SheetError
	return errors.As(err, &se) && se.StatusCode == models.SheetStatusDeveloperError
}
