package router

import (
	"net/http"
	"time"

	"grillmanager/config"
	"grillmanager/internal/handler"
	"grillmanager/internal/middleware"
	"grillmanager/internal/repository"
	"grillmanager/internal/service"
	"grillmanager/pkg/geocode"
	"grillmanager/pkg/payment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, provider payment.Provider, geocoder geocode.Geocoder) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Método não permitido"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Rota não encontrada"})
	})

	// Repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Services
	deliverySvc := service.NewDeliveryService(cfg.Delivery.OriginLatitude, cfg.Delivery.OriginLongitude)
	analyticsSvc := service.NewAnalyticsService(orderRepo)

	// Handlers
	productHandler := handler.NewProductHandler(productRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo, productRepo)
	restaurantHandler := handler.NewRestaurantHandler(restaurantRepo)
	orderHandler := handler.NewOrderHandler(orderRepo, paymentRepo)
	paymentHandler := handler.NewPaymentHandler(paymentRepo, orderRepo, provider, cfg.Payment.PixExpiry)
	sectionHandler := handler.NewSectionHandler(sectionRepo, productRepo)
	deliveryHandler := handler.NewDeliveryHandler(deliverySvc, restaurantRepo)
	geocodingHandler := handler.NewGeocodingHandler(geocoder)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	settingsHandler := handler.NewSettingsHandler(settingRepo)
	backupHandler := handler.NewBackupHandler(backupRepo)
	healthHandler := handler.NewHealthHandler(cfg.Server.Env)

	api := r.Group("/api")
	{
		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.GET("/products/:id", productHandler.Get)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/categories", categoryHandler.List)
		api.POST("/categories", categoryHandler.Create)
		api.GET("/categories/:id", categoryHandler.Get)
		api.PUT("/categories/:id", categoryHandler.Update)
		api.DELETE("/categories/:id", categoryHandler.Delete)

		api.GET("/restaurant", restaurantHandler.Get)
		api.PUT("/restaurant", restaurantHandler.Update)

		api.GET("/orders", orderHandler.List)
		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/:orderId", orderHandler.Get)
		api.PATCH("/orders/:orderId/status", orderHandler.UpdateStatus)

		api.GET("/promotional-sections", sectionHandler.List)
		api.POST("/promotional-sections", sectionHandler.Create)
		api.GET("/promotional-sections/:id", sectionHandler.Get)
		api.PUT("/promotional-sections/:id", sectionHandler.Update)
		api.DELETE("/promotional-sections/:id", sectionHandler.Delete)

		api.POST("/payments/pix/generate", paymentHandler.GeneratePix)
		api.POST("/payments/pix/verify", paymentHandler.VerifyPix)

		api.POST("/delivery/calculate-fee", deliveryHandler.CalculateFee)
		api.POST("/geocoding/address-to-coordinates", geocodingHandler.AddressToCoordinates)

		api.GET("/analytics/orders", analyticsHandler.Orders)

		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", settingsHandler.Create)
		api.PUT("/settings", settingsHandler.Update)

		api.GET("/export", backupHandler.Export)
		api.GET("/import", backupHandler.Export)
		api.POST("/import", backupHandler.Import)
		api.POST("/reset", backupHandler.Reset)

		api.GET("/health", healthHandler.Check)
	}

	return r
}
