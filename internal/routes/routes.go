// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and groups routes by the
// credential that guards them: none for the catalog, a session token for the
// in-sheet callbacks, an API key for the admin surface.
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swagshop/internal/config"
	"swagshop/internal/handlers"
	"swagshop/internal/middleware"
	"swagshop/internal/repositories"
	"swagshop/internal/services/catalog"
	"swagshop/internal/services/checkout"
	"swagshop/internal/services/paysdk"
	"swagshop/internal/services/processor"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	productRepo := repositories.NewProductRepository(db)
	shippingRepo := repositories.NewShippingOptionRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)

	// Initialize services
	catalogService := catalog.NewService(productRepo, shippingRepo, repositories.CacheService)

	sessionTTL := config.GetDurationEnv("SESSION_TTL", checkout.DefaultSessionTTL)
	checkoutService := checkout.NewService(
		newSDKClient(),
		catalogService,
		repositories.CacheService,
		newProcessor(),
		orderRepo,
		checkout.Config{
			MerchantID:              config.GetEnv("MERCHANT_ID", ""),
			MerchantName:            config.GetEnv("MERCHANT_NAME", "Swag Shop"),
			GatewayMerchantID:       config.GetEnv("GATEWAY_MERCHANT_ID", "swagshop-merchant"),
			DefaultShippingOptionID: config.GetEnv("DEFAULT_SHIPPING_OPTION_ID", ""),
			SessionTTL:              sessionTTL,
		},
	)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, sessionTTL)
	adminHandler := handlers.NewAdminHandler(catalogService, orderRepo)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Swag Shop API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Public routes
	api := app.Group("/api")
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/shipping-options", catalogHandler.ListShippingOptions)
	api.Get("/view", handlers.GetDefaultView)
	api.Get("/view/:name", handlers.GetView)
	api.Post("/checkout/session", checkoutHandler.CreateSession)

	// Session-scoped routes: everything a live payment sheet calls back into.
	session := api.Group("/checkout/session", middleware.SessionAuth)
	session.Get("/", checkoutHandler.GetSession)
	session.Post("/click", checkoutHandler.Click)
	session.Post("/shipping", checkoutHandler.ShippingChanged)
	session.Post("/cancel", checkoutHandler.Cancel)
	session.Post("/authorize", checkoutHandler.Authorize)

	// Admin routes guarded by the merchant API key.
	apiKeyAuth := middleware.NewAPIKeyAuth(merchantRepo)
	admin := api.Group("/admin", apiKeyAuth.Handler)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Post("/shipping-options", adminHandler.CreateShippingOption)
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Get("/orders/:id", adminHandler.GetOrder)
}

// newProcessor selects the capture backend. The default mock resolves every
// capture after a fixed delay; a Stripe key switches to real captures.
func newProcessor() checkout.Processor {
	if config.GetEnv("PAYMENT_PROCESSOR", "mock") == "stripe" {
		key := config.GetEnv("STRIPE_SECRET_KEY", "")
		if key == "" {
			log.Fatal("PAYMENT_PROCESSOR=stripe requires STRIPE_SECRET_KEY")
		}
		return processor.NewStripe(key)
	}
	return processor.NewMock(config.GetDurationEnv("MOCK_PROCESSOR_DELAY", 3*time.Second))
}

// newSDKClient builds the payment SDK surface. The simulated client stands in
// for the vendor SDK, which runs on the user's device in real deployments and
// reaches this API through the callback routes.
func newSDKClient() paysdk.Client {
	c := paysdk.NewSimulatedClient()
	c.Ready = config.GetEnv("SIMULATED_SDK_READY", "true") == "true"
	return c
}
