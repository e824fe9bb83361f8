package models

// User represents an account holder. The watchlist is the set of tracked
// symbols the user pinned in the UI; it has no effect on valuation.
type User struct {
	Base
	Email       string   `gorm:"uniqueIndex;not null" json:"email"`
	Password    string   `gorm:"not null" json:"-"`
	DisplayName string   `json:"display_name"`
	Watchlist   []string `gorm:"serializer:json" json:"watchlist"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`
}
