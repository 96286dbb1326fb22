package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"swagshop/internal/repositories"
	"swagshop/internal/services/catalog"
	"swagshop/internal/utils/response"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogSvc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogSvc}
}

// ListProducts returns the storefront catalog.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to load products")
	}
	return response.Success(c, "Products retrieved", products)
}

// GetProduct returns a single product by id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid product id")
	}

	product, err := h.catalogService.GetProduct(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.ServerError(c, "Failed to load product")
	}
	return response.Success(c, "Product retrieved", product)
}

// ListShippingOptions returns the selectable shipping options in display order.
func (h *CatalogHandler) ListShippingOptions(c *fiber.Ctx) error {
	options, err := h.catalogService.ListShippingOptions(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to load shipping options")
	}
	return response.Success(c, "Shipping options retrieved", options)
}
