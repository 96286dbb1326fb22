package handlers

import (
	"github.com/gofiber/fiber/v2"

	"swagshop/internal/utils/response"
)

// Storefront views. Exactly one is visible at a time.
const (
	ViewProduct  = "product"
	ViewCheckout = "checkout"
	ViewSuccess  = "success"
)

// ResolveView maps a requested view identifier to the visibility state of the
// storefront panels. An empty identifier selects the product view; an unknown
// one is rejected.
func ResolveView(name string) (map[string]bool, bool) {
	if name == "" {
		name = ViewProduct
	}
	switch name {
	case ViewProduct, ViewCheckout, ViewSuccess:
	default:
		return nil, false
	}
	return map[string]bool{
		ViewProduct:  name == ViewProduct,
		ViewCheckout: name == ViewCheckout,
		ViewSuccess:  name == ViewSuccess,
	}, true
}

// GetView returns the panel visibility for a requested view identifier.
func GetView(c *fiber.Ctx) error {
	visibility, ok := ResolveView(c.Params("name"))
	if !ok {
		return response.NotFound(c, "Unknown view")
	}
	return response.Success(c, "View resolved", visibility)
}

// GetDefaultView returns the initial panel visibility.
func GetDefaultView(c *fiber.Ctx) error {
	visibility, _ := ResolveView("")
	return response.Success(c, "View resolved", visibility)
}
