package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"stockfolio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHolding creates a purchase lot for the given symbol.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID, symbol string, quantity, purchasePrice float64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:        userID,
		Symbol:        symbol,
		CompanyName:   fmt.Sprintf("%s PLC", symbol),
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		PurchaseDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestQuote persists a quote snapshot for the given symbol and date.
func CreateTestQuote(t *testing.T, db *gorm.DB, symbol string, price float64, asOf time.Time) *models.Quote {
	t.Helper()

	quote := &models.Quote{
		Symbol:        symbol,
		CompanyName:   fmt.Sprintf("%s PLC", symbol),
		AsOf:          asOf,
		Price:         price,
		PreviousClose: price,
	}
	if err := db.Create(quote).Error; err != nil {
		t.Fatalf("failed to create test quote: %v", err)
	}
	return quote
}

// CreateTestFixedDeposit creates a fixed deposit asset with the given principal.
func CreateTestFixedDeposit(t *testing.T, db *gorm.DB, userID string, principal float64) *models.PortfolioAsset {
	t.Helper()

	rate := 12.5
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	maturity := start.AddDate(1, 0, 0)
	asset := &models.PortfolioAsset{
		UserID:       userID,
		Kind:         models.AssetFixedDeposit,
		Name:         fmt.Sprintf("Test FD %d", nextID()),
		Bank:         "Test Bank",
		Principal:    &principal,
		AnnualRate:   &rate,
		StartDate:    &start,
		MaturityDate: &maturity,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test fixed deposit: %v", err)
	}
	return asset
}

// Quotes builds an in-memory quote slice for valuation tests without touching
// the database. Prices are keyed by symbol.
func Quotes(prices map[string]float64) []models.Quote {
	asOf := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	quotes := make([]models.Quote, 0, len(prices))
	for symbol, price := range prices {
		quotes = append(quotes, models.Quote{
			Symbol: symbol,
			AsOf:   asOf,
			Price:  price,
		})
	}
	return quotes
}
