// Package main seeds the storefront: the merchant identity with a freshly
// issued admin API key, the demo catalog, and the shipping options.
package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"swagshop/internal/config"
	"swagshop/internal/models"
	"swagshop/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	seedMerchant()
	seedProducts()
	seedShippingOptions()

	log.Println("Seed complete")
}

func seedMerchant() {
	var existing models.Merchant
	if err := repositories.DB.First(&existing).Error; err == nil {
		log.Println("Merchant already exists, skipping")
		return
	}

	apiKey := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash API key:", err)
	}

	merchant := models.Merchant{
		Name:              config.GetEnv("MERCHANT_NAME", "Swag Shop"),
		GatewayMerchantID: config.GetEnv("GATEWAY_MERCHANT_ID", "swagshop-merchant"),
		APIKeyHash:        string(hash),
	}
	if err := repositories.DB.Create(&merchant).Error; err != nil {
		log.Fatal("Failed to create merchant:", err)
	}

	// The plaintext key is shown once and never stored.
	log.Printf("Merchant created. Admin API key: %s", apiKey)
}

func seedProducts() {
	var count int64
	repositories.DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Println("Products already exist, skipping")
		return
	}

	products := []models.Product{
		{
			SKU:         "TSHIRT-001",
			Title:       "T-Shirt",
			Description: "Classic crew neck, 100% cotton.",
			Price:       decimal.RequireFromString("129.99"),
			Currency:    "USD",
			ImageURL:    "/images/tshirt.png",
		},
	}
	if err := repositories.DB.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products:", err)
	}
	log.Printf("Seeded %d products", len(products))
}

func seedShippingOptions() {
	var count int64
	repositories.DB.Model(&models.ShippingOption{}).Count(&count)
	if count > 0 {
		log.Println("Shipping options already exist, skipping")
		return
	}

	options := []models.ShippingOption{
		{
			ID:          "shipping-001",
			Label:       "Free shipping",
			Description: "Arrives in 5 to 7 days",
			Surcharge:   decimal.RequireFromString("0.00"),
			SortOrder:   1,
		},
		{
			ID:          "shipping-002",
			Label:       "Standard shipping",
			Description: "Arrives in 3 to 4 days",
			Surcharge:   decimal.RequireFromString("0.05"),
			SortOrder:   2,
		},
		{
			ID:          "shipping-003",
			Label:       "Express shipping",
			Description: "Arrives tomorrow",
			Surcharge:   decimal.RequireFromString("10.00"),
			SortOrder:   3,
		},
	}
	if err := repositories.DB.Create(&options).Error; err != nil {
		log.Fatal("Failed to seed shipping options:", err)
	}
	log.Printf("Seeded %d shipping options", len(options))
}
