package models

import "time"

// AssetKind tags the five non-tradable asset variants. The set is closed:
// each kind has its own current-value rule in the asset metrics calculator.
type AssetKind string

const (
	AssetFixedAsset   AssetKind = "fixed_asset"
	AssetFixedDeposit AssetKind = "fixed_deposit"
	AssetSavings      AssetKind = "savings"
	AssetMutualFund   AssetKind = "mutual_fund"
	AssetTreasuryBond AssetKind = "treasury_bond"
)

// PortfolioAsset is a non-tradable asset owned by a user. One sparse table
// covers all five kinds; columns not belonging to an asset's kind stay null.
// Raw principal/balance/face-value fields are user-supplied and are never
// auto-updated by the engine.
type PortfolioAsset struct {
	Base
	UserID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind   AssetKind `gorm:"not null" json:"kind"`
	Name   string    `gorm:"not null" json:"name"`

	// fixed_asset
	Category       string     `json:"category,omitempty"`
	PurchasePrice  *float64   `json:"purchase_price,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	AppraisedValue *float64   `json:"appraised_value,omitempty"`

	// fixed_deposit / savings
	Bank        string     `json:"bank,omitempty"`
	Principal   *float64   `json:"principal,omitempty"`
	Balance     *float64   `json:"balance,omitempty"`
	AnnualRate  *float64   `json:"annual_rate,omitempty"`
	Compounding string     `json:"compounding,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	MaturityDate *time.Time `json:"maturity_date,omitempty"`
	AutoRenew   bool       `json:"auto_renew,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`

	// mutual_fund / treasury_bond
	FundCode        string     `json:"fund_code,omitempty"`
	IssueCode       string     `json:"issue_code,omitempty"`
	Units           *float64   `json:"units,omitempty"`
	BuyNav          *float64   `json:"buy_nav,omitempty"`
	LastNav         *float64   `json:"last_nav,omitempty"`
	NavDate         *time.Time `json:"nav_date,omitempty"`
	FaceValue       *float64   `json:"face_value,omitempty"`
	CouponRate      *float64   `json:"coupon_rate,omitempty"`
	CouponFrequency string     `json:"coupon_frequency,omitempty"`
	MarketPrice     *float64   `json:"market_price,omitempty"`

	// Computed on read by the asset metrics calculator, never persisted.
	CurrentValue float64 `gorm:"-" json:"current_value"`
}
