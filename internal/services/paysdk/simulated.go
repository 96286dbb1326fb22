package paysdk

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"swagshop/internal/models"
)

// SimulatedClient is an in-process stand-in for the vendor SDK, used by the
// demo deployment and the tests. It plays back a scripted user interaction:
// a number of shipping selections followed by an authorization or a close.
type SimulatedClient struct {
	// Ready is the answer to the readiness check.
	Ready bool
	// ShippingSelections are the options the simulated user picks, in order.
	ShippingSelections []string
	// Authorize controls whether the user authorizes or closes the sheet.
	Authorize bool
	// DeveloperError simulates a configuration fault instead of a cancel.
	DeveloperError bool
	// Token overrides the generated payment token when set.
	Token string
}

// NewSimulatedClient returns a client that is ready and authorizes with the
// sheet's default shipping option.
func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{Ready: true, Authorize: true}
}

func (c *SimulatedClient) IsReadyToPay(ctx context.Context, req models.ReadyToPayRequest) (bool, error) {
	if len(req.AllowedPaymentMethods) == 0 {
		return false, &SheetError{
			StatusCode: models.SheetStatusDeveloperError,
			Message:    "no allowed payment methods",
		}
	}
	return c.Ready, nil
}

func (c *SimulatedClient) LoadPaymentData(ctx context.Context, req models.PaymentDataRequest, cb Callbacks) (*models.PaymentData, error) {
	selected := req.ShippingOptionParameters.DefaultSelectedOptionID

	for _, optionID := range c.ShippingSelections {
		if cb.OnPaymentDataChanged == nil {
			continue
		}
		update, err := cb.OnPaymentDataChanged(ctx, IntermediatePaymentData{
			CallbackTrigger:          TriggerShippingOption,
			SelectedShippingOptionID: optionID,
		})
		if err != nil {
			return nil, &SheetError{
				StatusCode: models.SheetStatusDeveloperError,
				Message:    fmt.Sprintf("payment data callback failed: %v", err),
			}
		}
		if update.Error != nil {
			// The sheet shows the error and keeps the previous selection.
			continue
		}
		selected = optionID
	}

	if c.DeveloperError {
		return nil, &SheetError{
			StatusCode: models.SheetStatusDeveloperError,
			Message:    "simulated configuration fault",
		}
	}
	if !c.Authorize {
		return nil, &SheetError{
			StatusCode: models.SheetStatusCanceled,
			Message:    "user closed the payment sheet",
		}
	}

	token := c.Token
	if token == "" {
		token = "simtok_" + uuid.NewString()
	}
	data := &models.PaymentData{
		Token:                    token,
		SelectedShippingOptionID: selected,
	}

	if cb.OnPaymentAuthorized != nil {
		result := cb.OnPaymentAuthorized(ctx, *data)
		if result.TransactionState != models.AuthResultSuccess {
			return nil, &SheetError{
				StatusCode: models.SheetStatusDeveloperError,
				Message:    "payment authorization was not accepted",
			}
		}
	}

	return data, nil
}
