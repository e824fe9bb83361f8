package models

import "time"

// Holding represents one purchase lot of a tracked instrument owned by a user.
// A user may hold several lots of the same symbol; the valuation engine can
// collapse them into one position with a quantity-weighted average cost.
type Holding struct {
	Base
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Symbol        string    `gorm:"not null" json:"symbol"`
	CompanyName   string    `json:"company_name"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"`
	PurchaseDate  time.Time `gorm:"not null" json:"purchase_date"`
	Notes         string    `json:"notes,omitempty"`

	// Valuation metrics, populated at read time from supplied quotes.
	CurrentPrice    float64 `gorm:"-" json:"current_price"`
	Invested        float64 `gorm:"-" json:"invested"`
	CurrentValue    float64 `gorm:"-" json:"current_value"`
	GainLoss        float64 `gorm:"-" json:"gain_loss"`
	GainLossPercent float64 `gorm:"-" json:"gain_loss_percent"`
}
