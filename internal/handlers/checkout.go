package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"swagshop/internal/middleware"
	"swagshop/internal/models"
	"swagshop/internal/pricing"
	"swagshop/internal/repositories"
	"swagshop/internal/services/checkout"
	"swagshop/internal/utils"
	"swagshop/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService checkout.Service
	sessionTTL      time.Duration
}

func NewCheckoutHandler(checkoutSvc checkout.Service, sessionTTL time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutSvc,
		sessionTTL:      sessionTTL,
	}
}

// CreateSession runs the readiness check and opens a checkout session. The
// response tells the storefront whether to render the payment button; a
// negative readiness result is not an HTTP error, just no button.
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	var input struct {
		ProductID uint `json:"product_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.ProductID == 0 {
		return response.BadRequest(c, "product_id is required")
	}

	sess, err := h.checkoutService.CreateSession(c.Context(), input.ProductID)
	if err != nil {
		if errors.Is(err, checkout.ErrPaymentNotReady) {
			return response.Success(c, "Payment is not available on this device", fiber.Map{
				"ready": false,
			})
		}
		if errors.Is(err, repositories.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		log.Printf("Failed to create checkout session: %v", err)
		return response.ServerError(c, "Failed to create checkout session")
	}

	token, err := utils.GenerateSessionToken(sess.ID, h.sessionTTL)
	if err != nil {
		log.Printf("Failed to sign session token: %v", err)
		return response.ServerError(c, "Failed to create checkout session")
	}

	return response.Success(c, "Checkout session created", fiber.Map{
		"ready":   true,
		"session": sess,
		"token":   token,
	})
}

// GetSession returns the caller's session state.
func (h *CheckoutHandler) GetSession(c *fiber.Ctx) error {
	sess, err := h.checkoutService.GetSession(c.Context(), middleware.SessionID(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return response.Success(c, "Checkout session retrieved", sess)
}

// Click handles the payment button click and returns the payload the
// storefront hands to the payment SDK to open the sheet.
func (h *CheckoutHandler) Click(c *fiber.Ctx) error {
	req, err := h.checkoutService.OpenSheet(c.Context(), middleware.SessionID(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return response.Success(c, "Payment sheet request created", req)
}

// ShippingChanged recomputes the price breakdown for the option the user
// picked in the sheet. An unknown option id is a 400; the response still
// carries the update whose error field the sheet renders, and the session is
// unchanged.
func (h *CheckoutHandler) ShippingChanged(c *fiber.Ctx) error {
	var input struct {
		ShippingOptionID string `json:"shipping_option_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.ShippingOptionID == "" {
		return response.BadRequest(c, "shipping_option_id is required")
	}

	update, err := h.checkoutService.ShippingOptionChanged(c.Context(), middleware.SessionID(c), input.ShippingOptionID)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownShippingOption) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Unknown shipping option",
				"update": update,
			})
		}
		return h.mapError(c, err)
	}
	return response.Success(c, "Price breakdown updated", update)
}

// Cancel handles a sheet closed without payment.
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	var input struct {
		StatusCode string `json:"status_code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.StatusCode == "" {
		input.StatusCode = models.SheetStatusCanceled
	}

	sess, err := h.checkoutService.SheetClosed(c.Context(), middleware.SessionID(c), input.StatusCode)
	if err != nil {
		return h.mapError(c, err)
	}
	return response.Success(c, "Payment sheet closed", sess)
}

// Authorize settles the payment: final recompute, capture through the
// processor, order persisted. The acknowledgement mirrors what the sheet
// expects from its authorization callback.
func (h *CheckoutHandler) Authorize(c *fiber.Ctx) error {
	var input struct {
		Token                    string `json:"token"`
		SelectedShippingOptionID string `json:"selected_shipping_option_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Token == "" {
		return response.BadRequest(c, "token is required")
	}

	result, order, err := h.checkoutService.Authorize(c.Context(), middleware.SessionID(c), models.PaymentData{
		Token:                    input.Token,
		SelectedShippingOptionID: input.SelectedShippingOptionID,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrCaptureFailed) {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error":  "Payment capture failed",
				"result": result,
			})
		}
		return h.mapError(c, err)
	}

	return response.Success(c, "Payment captured", fiber.Map{
		"result": result,
		"order":  order,
	})
}

func (h *CheckoutHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		return response.NotFound(c, "Checkout session not found")
	case errors.Is(err, checkout.ErrInvalidTransition):
		return response.Conflict(c, err.Error())
	case errors.Is(err, pricing.ErrUnknownShippingOption):
		return response.BadRequest(c, "Unknown shipping option")
	default:
		log.Printf("Checkout request failed: %v", err)
		return response.ServerError(c, "Checkout request failed")
	}
}
