package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockfolio/internal/handlers"
	"stockfolio/internal/logger"
	"stockfolio/internal/marketdata"
	"stockfolio/internal/middleware"
	"stockfolio/internal/models"
	"stockfolio/internal/services"
	"stockfolio/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Upstream *httptest.Server
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Quote{},
		&models.Holding{},
		&models.Transaction{},
		&models.PortfolioAsset{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack with an upstream stub that
// returns no instruments.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithUpstream(t, `[]`)
}

// setupAppWithUpstream creates a full application stack backed by an isolated
// in-memory SQLite and a stub market data endpoint serving the given body.
func setupAppWithUpstream(t *testing.T, upstreamBody string) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(upstream.Close)

	log := logger.Get()
	matcher := marketdata.NewSymbolMatcher([]string{"JKH", "COMB", "HNB", "SAMP"})
	fetcher := marketdata.NewFetcher(upstream.URL, 5*time.Second, matcher, log)
	quoteStore := marketdata.NewQuoteStore(db)
	resolver := marketdata.NewResolver(quoteStore, fetcher, log)

	// Services
	userService := services.NewUserService(db, matcher)
	holdingService := services.NewHoldingService(db, matcher)
	assetService := services.NewAssetService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	quoteHandler := handlers.NewQuoteHandler(resolver)
	holdingHandler := handlers.NewHoldingHandler(holdingService, resolver)
	assetHandler := handlers.NewAssetHandler(assetService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	v1.GET("/quotes/latest", quoteHandler.GetLatestQuotes)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/watchlist", authHandler.UpdateWatchlist)

	holdings := protected.Group("/holdings")
	holdings.POST("", holdingHandler.AddHolding)
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	protected.GET("/transactions", holdingHandler.ListTransactions)
	protected.GET("/portfolio/summary", holdingHandler.GetPortfolioSummary)

	assets := protected.Group("/assets")
	assets.POST("", assetHandler.AddAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	return &testApp{DB: db, Router: router, Upstream: upstream}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"display_name":"Test User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}
