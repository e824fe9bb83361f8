package marketdata

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockfolio/internal/models"
)

// QuoteStore persists daily quote snapshots. LatestQuotes is a read-path
// operation and its callers absorb failures into "no data"; SaveQuotes is
// best-effort cache population on the resolver's live path.
type QuoteStore interface {
	// LatestQuotes returns all quotes for the most recent as-of date present
	// in the store, or an empty slice when the store holds no snapshots.
	LatestQuotes(ctx context.Context) ([]models.Quote, error)

	// SaveQuotes upserts quotes keyed by (symbol, as_of).
	SaveQuotes(ctx context.Context, quotes []models.Quote) error
}

type gormQuoteStore struct {
	db *gorm.DB
}

// NewQuoteStore creates a QuoteStore backed by the given database.
func NewQuoteStore(db *gorm.DB) QuoteStore {
	return &gormQuoteStore{db: db}
}

func (s *gormQuoteStore) LatestQuotes(ctx context.Context) ([]models.Quote, error) {
	var newest models.Quote
	err := s.db.WithContext(ctx).Order("as_of DESC").First(&newest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Quote{}, nil
	}
	if err != nil {
		return nil, err
	}

	var quotes []models.Quote
	if err := s.db.WithContext(ctx).
		Where("as_of = ?", newest.AsOf).
		Order("symbol").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *gormQuoteStore) SaveQuotes(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "symbol"}, {Name: "as_of"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_name", "price", "open", "high", "low",
			"previous_close", "change", "change_percent", "volume",
		}),
	}).Create(&quotes).Error
}
