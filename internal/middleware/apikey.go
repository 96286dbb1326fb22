package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"swagshop/internal/repositories"
)

// APIKeyAuth guards the admin surface. The merchant's API key is issued once
// at seed time and only its bcrypt hash is stored.
type APIKeyAuth struct {
	merchants repositories.MerchantRepository
}

func NewAPIKeyAuth(merchants repositories.MerchantRepository) *APIKeyAuth {
	return &APIKeyAuth{merchants: merchants}
}

func (m *APIKeyAuth) Handler(c *fiber.Ctx) error {
	apiKey := c.Get("X-API-Key")
	if apiKey == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing API key"})
	}

	merchant, err := m.merchants.Get(c.Context())
	if err != nil {
		log.Printf("API key check failed to load merchant: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid API key"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(merchant.APIKeyHash), []byte(apiKey)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid API key"})
	}

	c.Locals("merchantID", merchant.ID)
	return c.Next()
}
