package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/logger"
	"stockfolio/internal/marketdata"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// holdingService handles holding-related business logic.
type holdingService struct {
	db      *gorm.DB
	matcher *marketdata.SymbolMatcher
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB, matcher *marketdata.SymbolMatcher) HoldingServicer {
	return &holdingService{db: db, matcher: matcher}
}

// AddHolding records a purchase lot together with its originating buy
// transaction. The two writes are a single database transaction: both
// documents succeed or neither does.
func (s *holdingService) AddHolding(userID string, input HoldingInput) (*models.Holding, error) {
	code, ok := s.matcher.Match(input.Symbol)
	if !ok {
		return nil, apperrors.ErrUntrackedSymbol
	}
	if input.Quantity <= 0 || input.PurchasePrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity and purchase price must be positive")
	}

	holding := &models.Holding{
		UserID:        userID,
		Symbol:        code,
		CompanyName:   input.CompanyName,
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		Notes:         input.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(holding).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, txErr)
		}

		buy := &models.Transaction{
			UserID:      userID,
			Symbol:      code,
			CompanyName: input.CompanyName,
			Kind:        models.TransactionBuy,
			Quantity:    input.Quantity,
			UnitPrice:   input.PurchasePrice,
			Total:       input.Quantity * input.PurchasePrice,
			Date:        input.PurchaseDate,
			Notes:       input.Notes,
		}
		if txErr := tx.Create(buy).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, txErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return holding, nil
}

// ListHoldings returns a paginated list of the user's lots. Read failures
// degrade to an empty page to keep the caller's surface available.
func (s *holdingService) ListHoldings(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Holding{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		logger.Get().Warnw("holding list read failed, returning empty", "error", err)
		empty := pagination.NewPageResponse([]models.Holding{}, page.Page, page.PageSize, 0)
		return &empty, nil
	}

	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).Order("created_at").
		Scopes(pagination.Paginate(page)).Find(&holdings).Error; err != nil {
		logger.Get().Warnw("holding list read failed, returning empty", "error", err)
		empty := pagination.NewPageResponse([]models.Holding{}, page.Page, page.PageSize, 0)
		return &empty, nil
	}

	result := pagination.NewPageResponse(holdings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetHoldingByID returns one of the user's lots.
func (s *holdingService) GetHoldingByID(userID, holdingID string) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.Where("id = ? AND user_id = ?", holdingID, userID).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrHoldingNotFound, err)
	}
	return &holding, nil
}

// UpdateHolding edits a lot in place. Quantity and price move independently;
// the originating transaction is never touched.
func (s *holdingService) UpdateHolding(userID, holdingID string, update HoldingUpdate) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.Where("id = ? AND user_id = ?", holdingID, userID).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	changes := map[string]interface{}{}
	if update.CompanyName != nil {
		changes["company_name"] = *update.CompanyName
	}
	if update.Quantity != nil {
		if *update.Quantity <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be positive")
		}
		changes["quantity"] = *update.Quantity
	}
	if update.PurchasePrice != nil {
		if *update.PurchasePrice <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price must be positive")
		}
		changes["purchase_price"] = *update.PurchasePrice
	}
	if update.PurchaseDate != nil {
		changes["purchase_date"] = *update.PurchaseDate
	}
	if update.Notes != nil {
		changes["notes"] = *update.Notes
	}
	if len(changes) == 0 {
		return &holding, nil
	}

	if err := s.db.Model(&holding).Updates(changes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &holding, nil
}

// DeleteHolding removes a lot. Its originating transaction stays: the
// transaction log is append-only.
func (s *holdingService) DeleteHolding(userID, holdingID string) error {
	result := s.db.Where("id = ? AND user_id = ?", holdingID, userID).Delete(&models.Holding{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// ListTransactions returns the user's trade log, newest first. Read failures
// degrade to an empty page.
func (s *holdingService) ListTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		logger.Get().Warnw("transaction list read failed, returning empty", "error", err)
		empty := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
		return &empty, nil
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").
		Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		logger.Get().Warnw("transaction list read failed, returning empty", "error", err)
		empty := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
		return &empty, nil
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPortfolioSummary values all of the user's lots against the supplied
// quotes. With aggregate set, same-symbol lots are collapsed into one
// position each. A store read failure degrades to an empty portfolio.
func (s *holdingService) GetPortfolioSummary(userID string, quotes []models.Quote, aggregate bool) (*PortfolioSummary, error) {
	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&holdings).Error; err != nil {
		logger.Get().Warnw("holdings read failed, valuing empty portfolio", "error", err)
		holdings = nil
	}

	summary := ComputeSummary(holdings, quotes)
	if aggregate {
		summary.Holdings = AggregateBySymbol(summary.Holdings)
	}
	return summary, nil
}
