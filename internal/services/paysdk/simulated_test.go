package paysdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swagshop/internal/models"
)

func testRequest() models.PaymentDataRequest {
	return models.PaymentDataRequest{
		APIVersion:      2,
		APIVersionMinor: 0,
		AllowedPaymentMethods: []models.PaymentMethod{
			{Type: "CARD"},
		},
		ShippingOptionParameters: models.ShippingOptionParameters{
			DefaultSelectedOptionID: "shipping-001",
		},
	}
}

func TestIsReadyToPay(t *testing.T) {
	c := NewSimulatedClient()

	ready, err := c.IsReadyToPay(context.Background(), models.ReadyToPayRequest{
		APIVersion:            2,
		AllowedPaymentMethods: []models.PaymentMethod{{Type: "CARD"}},
	})

	require.NoError(t, err)
	assert.True(t, ready)
}

func TestIsReadyToPayRejectsEmptyMethods(t *testing.T) {
	c := NewSimulatedClient()

	_, err := c.IsReadyToPay(context.Background(), models.ReadyToPayRequest{APIVersion: 2})

	assert.True(t, IsDeveloperError(err))
}

func TestLoadPaymentDataAuthorizesDefaultSelection(t *testing.T) {
	c := NewSimulatedClient()

	var authorized models.PaymentData
	data, err := c.LoadPaymentData(context.Background(), testRequest(), Callbacks{
		OnPaymentAuthorized: func(ctx context.Context, d models.PaymentData) models.AuthorizationResult {
			authorized = d
			return models.AuthorizationResult{TransactionState: models.AuthResultSuccess}
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "shipping-001", data.SelectedShippingOptionID)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, data.Token, authorized.Token)
}

func TestLoadPaymentDataPlaysBackSelections(t *testing.T) {
	c := NewSimulatedClient()
	c.ShippingSelections = []string{"shipping-002", "shipping-003"}

	var seen []string
	data, err := c.LoadPaymentData(context.Background(), testRequest(), Callbacks{
		OnPaymentDataChanged: func(ctx context.Context, ev IntermediatePaymentData) (models.PaymentDataRequestUpdate, error) {
			assert.Equal(t, TriggerShippingOption, ev.CallbackTrigger)
			seen = append(seen, ev.SelectedShippingOptionID)
			return models.PaymentDataRequestUpdate{NewTransactionInfo: &models.TransactionInfo{}}, nil
		},
		OnPaymentAuthorized: func(ctx context.Context, d models.PaymentData) models.AuthorizationResult {
			return models.AuthorizationResult{TransactionState: models.AuthResultSuccess}
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"shipping-002", "shipping-003"}, seen)
	assert.Equal(t, "shipping-003", data.SelectedShippingOptionID)
}

func TestLoadPaymentDataKeepsSelectionOnUpdateError(t *testing.T) {
	c := NewSimulatedClient()
	c.ShippingSelections = []string{"shipping-999"}

	data, err := c.LoadPaymentData(context.Background(), testRequest(), Callbacks{
		OnPaymentDataChanged: func(ctx context.Context, ev IntermediatePaymentData) (models.PaymentDataRequestUpdate, error) {
			return models.PaymentDataRequestUpdate{
				Error: &models.PaymentDataError{Reason: "SHIPPING_OPTION_INVALID"},
			}, nil
		},
		OnPaymentAuthorized: func(ctx context.Context, d models.PaymentData) models.AuthorizationResult {
			return models.AuthorizationResult{TransactionState: models.AuthResultSuccess}
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "shipping-001", data.SelectedShippingOptionID)
}

func TestLoadPaymentDataCancel(t *testing.T) {
	c := NewSimulatedClient()
	c.Authorize = false

	_, err := c.LoadPaymentData(context.Background(), testRequest(), Callbacks{})

	assert.True(t, IsCanceled(err))
}

func TestLoadPaymentDataRejectedAuthorization(t *testing.T) {
	c := NewSimulatedClient()

	_, err := c.LoadPaymentData(context.Background(), testRequest(), Callbacks{
		OnPaymentAuthorized: func(ctx context.Context, d models.PaymentData) models.AuthorizationResult {
			return models.AuthorizationResult{TransactionState: models.AuthResultFailure}
		},
	})

	assert.True(t, IsDeveloperError(err))
}
