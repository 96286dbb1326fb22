package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"swagshop/internal/models"
	"swagshop/internal/repositories"
	"swagshop/internal/services/catalog"
	"swagshop/internal/utils/response"
	"swagshop/internal/utils/validation"
)

type AdminHandler struct {
	catalogService catalog.Service
	orderRepo      repositories.OrderRepository
}

func NewAdminHandler(catalogSvc catalog.Service, orderRepo repositories.OrderRepository) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogSvc,
		orderRepo:      orderRepo,
	}
}

// CreateProduct adds a product to the storefront catalog.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var input struct {
		SKU         string `json:"sku"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       string `json:"price"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v := validation.New()
	v.Required(input.SKU, "sku")
	v.Required(input.Title, "title")
	v.Required(input.Price, "price")
	if !v.Valid() {
		return response.ValidationError(c, v.First())
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return response.ValidationError(c, "price: must be a decimal amount")
	}
	v.NonNegativeAmount(price, "price")
	if !v.Valid() {
		return response.ValidationError(c, v.First())
	}

	product := &models.Product{
		SKU:         input.SKU,
		Title:       input.Title,
		Description: input.Description,
		Price:       price,
		Currency:    "USD",
		ImageURL:    input.ImageURL,
	}
	if err := h.catalogService.CreateProduct(c.Context(), product); err != nil {
		log.Printf("Failed to create product: %v", err)
		return response.ServerError(c, "Failed to create product")
	}
	return response.Success(c, "Product created", product)
}

// CreateShippingOption adds a selectable shipping option.
func (h *AdminHandler) CreateShippingOption(c *fiber.Ctx) error {
	var input struct {
		ID          string `json:"id"`
		Label       string `json:"label"`
		Description string `json:"description"`
		Surcharge   string `json:"surcharge"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v := validation.New()
	v.Required(input.ID, "id")
	v.Required(input.Label, "label")
	v.Required(input.Surcharge, "surcharge")
	if !v.Valid() {
		return response.ValidationError(c, v.First())
	}

	surcharge, err := decimal.NewFromString(input.Surcharge)
	if err != nil {
		return response.ValidationError(c, "surcharge: must be a decimal amount")
	}
	v.NonNegativeAmount(surcharge, "surcharge")
	if !v.Valid() {
		return response.ValidationError(c, v.First())
	}

	option := &models.ShippingOption{
		ID:          input.ID,
		Label:       input.Label,
		Description: input.Description,
		Surcharge:   surcharge,
		SortOrder:   input.SortOrder,
	}
	if err := h.catalogService.CreateShippingOption(c.Context(), option); err != nil {
		log.Printf("Failed to create shipping option: %v", err)
		return response.ServerError(c, "Failed to create shipping option")
	}
	return response.Success(c, "Shipping option created", option)
}

// ListOrders returns recorded orders, newest first.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	orders, err := h.orderRepo.List(c.Context(), limit, offset)
	if err != nil {
		return response.ServerError(c, "Failed to load orders")
	}
	return response.Success(c, "Orders retrieved", orders)
}

// GetOrder returns a single order by id.
func (h *AdminHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orderRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == repositories.ErrOrderNotFound {
			return response.NotFound(c, "Order not found")
		}
		return response.ServerError(c, "Failed to load order")
	}
	return response.Success(c, "Order retrieved", order)
}
