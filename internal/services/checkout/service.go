package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"swagshop/internal/models"
	"swagshop/internal/pricing"
	"swagshop/internal/services/paysdk"
)

// authorizedSessionTTL keeps a completed session queryable briefly before the
// store discards it.
const authorizedSessionTTL = 5 * time.Minute

type service struct {
	sdk       paysdk.Client
	catalog   CatalogService
	store     SessionStore
	processor Processor
	orders    OrderRecorder
	config    Config
	locks     *sessionLocks
}

// NewService creates a new checkout service
func NewService(
	sdk paysdk.Client,
	catalogSvc CatalogService,
	store SessionStore,
	proc Processor,
	orders OrderRecorder,
	config Config,
) Service {
	if sdk == nil {
		panic("payment sdk client is required")
	}
	if catalogSvc == nil {
		panic("catalog service is required")
	}
	if store == nil {
		panic("session store is required")
	}
	if proc == nil {
		panic("processor is required")
	}
	if orders == nil {
		panic("order recorder is required")
	}

	config.applyDefaults()

	return &service{
		sdk:       sdk,
		catalog:   catalogSvc,
		store:     store,
		processor: proc,
		orders:    orders,
		config:    config,
		locks:     newSessionLocks(),
	}
}

func (s *service) CreateSession(ctx context.Context, productID uint) (*models.CheckoutSession, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	now := time.Now()
	sess := &models.CheckoutSession{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		BaseTotal: product.Price,
		Currency:  pricing.CurrencyCode,
		State:     models.SessionStateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := dispatch(sess, EventReadinessCheck{}); err != nil {
		return nil, err
	}

	ready, err := s.sdk.IsReadyToPay(ctx, s.readyToPayRequest())
	if err != nil {
		return nil, fmt.Errorf("readiness check failed: %w", err)
	}

	if err := dispatch(sess, EventReadinessResult{Ready: ready}); err != nil {
		return nil, err
	}
	if !ready {
		// No button is rendered; the caller shows the notice. The session is
		// never persisted.
		return nil, ErrPaymentNotReady
	}

	estimate, err := pricing.Estimate(sess.BaseTotal)
	if err != nil {
		return nil, err
	}
	sess.Transaction = &estimate

	if err := s.store.SaveSession(ctx, sess, s.config.SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.getSession(ctx, sessionID)
}

func (s *service) OpenSheet(ctx context.Context, sessionID string) (*models.PaymentDataRequest, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := dispatch(sess, EventButtonClicked{}); err != nil {
		return nil, err
	}

	options, err := s.catalog.ListShippingOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping options: %w", err)
	}

	req := s.paymentDataRequest(sess, options)

	if err := s.store.SaveSession(ctx, sess, s.config.SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &req, nil
}

func (s *service) ShippingOptionChanged(ctx context.Context, sessionID, optionID string) (models.PaymentDataRequestUpdate, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return models.PaymentDataRequestUpdate{}, err
	}

	table, err := s.catalog.SurchargeTable(ctx)
	if err != nil {
		return models.PaymentDataRequestUpdate{}, fmt.Errorf("failed to build surcharge table: %w", err)
	}

	info, err := pricing.Recompute(sess.BaseTotal, optionID, table)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownShippingOption) {
			return models.PaymentDataRequestUpdate{
				Error: &models.PaymentDataError{
					Reason:  "SHIPPING_OPTION_INVALID",
					Message: "The selected shipping option is not available.",
					Intent:  "SHIPPING_OPTION",
				},
			}, err
		}
		return models.PaymentDataRequestUpdate{}, err
	}

	if err := dispatch(sess, EventShippingChanged{OptionID: optionID}); err != nil {
		return models.PaymentDataRequestUpdate{}, err
	}
	sess.Transaction = &info

	if err := s.store.SaveSession(ctx, sess, s.config.SessionTTL); err != nil {
		return models.PaymentDataRequestUpdate{}, fmt.Errorf("failed to save session: %w", err)
	}
	return models.PaymentDataRequestUpdate{NewTransactionInfo: &info}, nil
}

func (s *service) SheetClosed(ctx context.Context, sessionID, statusCode string) (*models.CheckoutSession, error) {
	if statusCode != models.SheetStatusCanceled && statusCode != models.SheetStatusDeveloperError {
		return nil, fmt.Errorf("unknown sheet status code %q", statusCode)
	}

	release := s.locks.acquire(sessionID)
	defer release()

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := dispatch(sess, EventSheetClosed{StatusCode: statusCode}); err != nil {
		return nil, err
	}

	if err := s.store.SaveSession(ctx, sess, s.config.SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

func (s *service) Authorize(ctx context.Context, sessionID string, data models.PaymentData) (models.AuthorizationResult, *models.Order, error) {
	failure := models.AuthorizationResult{TransactionState: models.AuthResultFailure}

	release := s.locks.acquire(sessionID)
	defer release()

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return failure, nil, err
	}

	if err := dispatch(sess, EventAuthorized{Data: data}); err != nil {
		return failure, nil, err
	}

	// Settle the final price with the selected (or default) shipping option.
	options, err := s.catalog.ListShippingOptions(ctx)
	if err != nil {
		return failure, nil, fmt.Errorf("failed to list shipping options: %w", err)
	}
	optionID := sess.SelectedShippingOptionID
	if optionID == "" {
		optionID = s.defaultShippingOptionID(options)
	}

	table, err := pricing.NewSurchargeTable(options)
	if err != nil {
		return failure, nil, err
	}
	info, err := pricing.Recompute(sess.BaseTotal, optionID, table)
	if err != nil {
		return failure, nil, err
	}
	sess.Transaction = &info
	sess.SelectedShippingOptionID = optionID

	amountCents, err := toCents(info.TotalPrice)
	if err != nil {
		return failure, nil, err
	}

	order := &models.Order{
		ID:               uuid.NewString(),
		SessionID:        sess.ID,
		ProductID:        sess.ProductID,
		ShippingOptionID: optionID,
		AmountCents:      amountCents,
		Currency:         sess.Currency,
		Status:           models.OrderStatusPending,
		Metadata: models.NewJSON(map[string]interface{}{
			"display_total": info.TotalPrice,
			"base_total":    sess.BaseTotal.StringFixed(2),
		}),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return failure, nil, fmt.Errorf("failed to create order: %w", err)
	}

	receipt, err := s.processor.Capture(ctx, data.Token, amountCents, "Order "+order.ID)
	if err != nil {
		if uerr := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusFailed, ""); uerr != nil {
			log.Printf("failed to mark order %s failed: %v", order.ID, uerr)
		}
		if derr := dispatch(sess, EventCaptureResult{Succeeded: false}); derr == nil {
			if serr := s.store.SaveSession(ctx, sess, s.config.SessionTTL); serr != nil {
				log.Printf("failed to save session %s: %v", sess.ID, serr)
			}
		}
		return failure, nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPaid, receipt.Reference); err != nil {
		return failure, nil, fmt.Errorf("failed to finalize order: %w", err)
	}
	order.Status = models.OrderStatusPaid
	order.ProcessorRef = receipt.Reference

	if err := dispatch(sess, EventCaptureResult{Succeeded: true}); err != nil {
		return failure, order, err
	}

	// The checkout is complete; keep the terminal session around only long
	// enough for the success view, then let the store discard it.
	if err := s.store.SaveSession(ctx, sess, authorizedSessionTTL); err != nil {
		log.Printf("failed to save session %s: %v", sess.ID, err)
	}

	return models.AuthorizationResult{TransactionState: models.AuthResultSuccess}, order, nil
}

func (s *service) RunSheet(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	req, err := s.OpenSheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cb := paysdk.Callbacks{
		OnPaymentDataChanged: func(ctx context.Context, event paysdk.IntermediatePaymentData) (models.PaymentDataRequestUpdate, error) {
			if event.CallbackTrigger != paysdk.TriggerShippingOption {
				return models.PaymentDataRequestUpdate{}, nil
			}
			update, err := s.ShippingOptionChanged(ctx, sessionID, event.SelectedShippingOptionID)
			if errors.Is(err, pricing.ErrUnknownShippingOption) {
				// The sheet shows the error; the interaction continues.
				return update, nil
			}
			return update, err
		},
		OnPaymentAuthorized: func(ctx context.Context, data models.PaymentData) models.AuthorizationResult {
			result, _, err := s.Authorize(ctx, sessionID, data)
			if err != nil {
				log.Printf("checkout session %s: authorization failed: %v", sessionID, err)
			}
			return result
		},
	}

	if _, err := s.sdk.LoadPaymentData(ctx, *req, cb); err != nil {
		var se *paysdk.SheetError
		if !errors.As(err, &se) {
			return nil, fmt.Errorf("payment sheet failed: %w", err)
		}
		// Route the close through the state machine unless a capture attempt
		// already moved the session out of SheetOpen.
		sess, gerr := s.getSession(ctx, sessionID)
		if gerr != nil {
			return nil, gerr
		}
		if sess.State == models.SessionStateSheetOpen {
			return s.SheetClosed(ctx, sessionID, se.StatusCode)
		}
		return sess, nil
	}

	return s.getSession(ctx, sessionID)
}

// Helpers

func (s *service) getSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	sess, found, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *service) readyToPayRequest() models.ReadyToPayRequest {
	return models.ReadyToPayRequest{
		APIVersion:            2,
		APIVersionMinor:       0,
		AllowedPaymentMethods: s.allowedPaymentMethods(),
	}
}

func (s *service) paymentDataRequest(sess *models.CheckoutSession, options []models.ShippingOption) models.PaymentDataRequest {
	selectable := make([]models.SelectableShippingOption, 0, len(options))
	for _, opt := range options {
		selectable = append(selectable, models.SelectableShippingOption{
			ID:          opt.ID,
			Label:       opt.Label,
			Description: opt.Description,
		})
	}

	return models.PaymentDataRequest{
		APIVersion:            2,
		APIVersionMinor:       0,
		AllowedPaymentMethods: s.allowedPaymentMethods(),
		MerchantInfo: models.MerchantInfo{
			MerchantID:   s.config.MerchantID,
			MerchantName: s.config.MerchantName,
		},
		TransactionInfo:        *sess.Transaction,
		ShippingOptionRequired: true,
		ShippingOptionParameters: models.ShippingOptionParameters{
			DefaultSelectedOptionID: s.defaultShippingOptionID(options),
			ShippingOptions:         selectable,
		},
		CallbackIntents: []string{"SHIPPING_OPTION", "PAYMENT_AUTHORIZATION"},
	}
}

func (s *service) allowedPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{{
		Type: "CARD",
		Parameters: models.JSON{
			"allowedAuthMethods":  s.config.AllowedAuthMethods,
			"allowedCardNetworks": s.config.AllowedCardNetworks,
		},
		TokenizationSpecification: models.JSON{
			"type": "PAYMENT_GATEWAY",
			"parameters": map[string]interface{}{
				"gateway":           "example",
				"gatewayMerchantId": s.config.GatewayMerchantID,
			},
		},
	}}
}

func (s *service) defaultShippingOptionID(options []models.ShippingOption) string {
	if s.config.DefaultShippingOptionID != "" {
		return s.config.DefaultShippingOptionID
	}
	if len(options) > 0 {
		return options[0].ID
	}
	return ""
}

func toCents(price string) (int64, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
