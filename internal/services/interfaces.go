package services

import (
	"time"

	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateWatchlist(userID string, symbols []string) (*models.User, error)
}

// HoldingInput holds the fields for recording a new purchase lot.
type HoldingInput struct {
	Symbol        string
	CompanyName   string
	Quantity      float64
	PurchasePrice float64
	PurchaseDate  time.Time
	Notes         string
}

// HoldingUpdate holds the mutable holding fields; nil means "leave as is".
// Quantity and purchase price are independently mutable.
type HoldingUpdate struct {
	CompanyName   *string
	Quantity      *float64
	PurchasePrice *float64
	PurchaseDate  *time.Time
	Notes         *string
}

// HoldingServicer defines the contract for holding-related business logic.
type HoldingServicer interface {
	AddHolding(userID string, input HoldingInput) (*models.Holding, error)
	ListHoldings(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error)
	GetHoldingByID(userID, holdingID string) (*models.Holding, error)
	UpdateHolding(userID, holdingID string, update HoldingUpdate) (*models.Holding, error)
	DeleteHolding(userID, holdingID string) error
	ListTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetPortfolioSummary(userID string, quotes []models.Quote, aggregate bool) (*PortfolioSummary, error)
}

// AssetInput holds the fields for creating or updating a non-tradable asset.
// Only the fields belonging to the asset's kind are consulted.
type AssetInput struct {
	Name            string
	Category        string
	PurchasePrice   *float64
	PurchaseDate    *time.Time
	AppraisedValue  *float64
	Bank            string
	Principal       *float64
	Balance         *float64
	AnnualRate      *float64
	Compounding     string
	StartDate       *time.Time
	MaturityDate    *time.Time
	AutoRenew       bool
	LastUpdated     *time.Time
	FundCode        string
	IssueCode       string
	Units           *float64
	BuyNav          *float64
	LastNav         *float64
	NavDate         *time.Time
	FaceValue       *float64
	CouponRate      *float64
	CouponFrequency string
	MarketPrice     *float64
}

// AssetServicer defines the contract for non-tradable asset business logic.
type AssetServicer interface {
	AddAsset(userID string, kind models.AssetKind, input AssetInput) (*models.PortfolioAsset, error)
	ListAssets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioAsset], error)
	GetAssetByID(userID, assetID string) (*models.PortfolioAsset, error)
	UpdateAsset(userID, assetID string, input AssetInput) (*models.PortfolioAsset, error)
	DeleteAsset(userID, assetID string) error
}
