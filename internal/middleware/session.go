// Package middleware provides HTTP middleware for the checkout API: session
// bearer tokens for the in-sheet callback routes and API keys for the admin
// surface.
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"swagshop/internal/utils"
)

// SessionAuth validates the checkout session bearer token and stores the
// session id in the request context. The token is minted when the session is
// created, so callback routes only act on sessions the caller owns.
func SessionAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseSessionToken(tokenString)
	if err != nil {
		log.Printf("Session token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("sessionID", claims.SessionID)
	return c.Next()
}

// SessionID returns the session id stored by SessionAuth.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals("sessionID").(string)
	return id
}
