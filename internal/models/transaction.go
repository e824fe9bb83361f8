package models

import "time"

// TransactionKind represents the direction of a trade.
type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

// Transaction is one recorded trade. Transactions are append-only: the service
// layer never updates or deletes one once written, and deleting a holding does
// not remove the transactions that created it.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Symbol      string          `gorm:"not null" json:"symbol"`
	CompanyName string          `json:"company_name"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Quantity    float64         `gorm:"not null" json:"quantity"`
	UnitPrice   float64         `gorm:"not null" json:"unit_price"`
	Total       float64         `gorm:"not null" json:"total"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Notes       string          `json:"notes,omitempty"`
}
