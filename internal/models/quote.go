package models

import (
	"time"

	"stockfolio/internal/uuid"

	"gorm.io/gorm"
)

// Quote is one normalized price snapshot for a tracked instrument on a given
// trading date. Quotes are immutable time-series data — no Base embed, no soft
// deletes. Uniqueness is (symbol, as_of): one snapshot per instrument per day.
type Quote struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Symbol        string    `gorm:"not null;uniqueIndex:uq_quotes_symbol_as_of" json:"symbol"`
	CompanyName   string    `json:"company_name,omitempty"`
	AsOf          time.Time `gorm:"not null;uniqueIndex:uq_quotes_symbol_as_of" json:"as_of"`
	Price         float64   `gorm:"not null" json:"price"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	PreviousClose float64   `json:"previous_close"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Volume        int64     `json:"volume"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.New()
	}
	return nil
}
