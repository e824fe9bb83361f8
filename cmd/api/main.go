package main

import (
	"fmt"
	"net/http"
	"os"

	"stockfolio/internal/config"
	"stockfolio/internal/database"
	"stockfolio/internal/handlers"
	"stockfolio/internal/logger"
	"stockfolio/internal/marketdata"
	"stockfolio/internal/middleware"
	"stockfolio/internal/services"
	"stockfolio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stockfolio/internal/docs" // Import swagger docs
)

// @title           Stockfolio API
// @version         1.0
// @description     Stockfolio tracks a Colombo Stock Exchange share portfolio alongside fixed deposits, savings, mutual funds, treasury bonds, and other assets.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Market data pipeline
	db := dbManager.DB()
	matcher := marketdata.NewSymbolMatcher(appConfig.TrackedSymbols)
	fetcher := marketdata.NewFetcher(appConfig.MarketDataURL, appConfig.MarketDataTimeout, matcher, log)
	quoteStore := marketdata.NewQuoteStore(db)
	resolver := marketdata.NewResolver(quoteStore, fetcher, log)

	// Initialize services
	userService := services.NewUserService(db, matcher)
	holdingService := services.NewHoldingService(db, matcher)
	assetService := services.NewAssetService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	quoteHandler := handlers.NewQuoteHandler(resolver)
	holdingHandler := handlers.NewHoldingHandler(holdingService, resolver)
	assetHandler := handlers.NewAssetHandler(assetService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Latest quotes are public; valuation endpoints are not
	v1.GET("/quotes/latest", quoteHandler.GetLatestQuotes)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/watchlist", authHandler.UpdateWatchlist)

	// Holding routes
	holdings := protected.Group("/holdings")
	holdings.POST("", holdingHandler.AddHolding)
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	// Transaction log
	protected.GET("/transactions", holdingHandler.ListTransactions)

	// Portfolio valuation
	protected.GET("/portfolio/summary", holdingHandler.GetPortfolioSummary)

	// Non-tradable asset routes
	assets := protected.Group("/assets")
	assets.POST("", assetHandler.AddAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	log.Infof("Starting Stockfolio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
