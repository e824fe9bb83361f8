package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/logger"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
)

// assetService handles non-tradable asset business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// validateKindFields checks that the fields required by the asset's kind are
// present and positive. Optional fields are not checked; every optional has a
// defined fallback in the metrics calculator.
func validateKindFields(kind models.AssetKind, input AssetInput) error {
	missing := func(field string) error {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" is required for "+string(kind))
	}
	switch kind {
	case models.AssetFixedAsset:
		if input.PurchasePrice == nil || *input.PurchasePrice <= 0 {
			return missing("purchase_price")
		}
	case models.AssetFixedDeposit:
		if input.Principal == nil || *input.Principal <= 0 {
			return missing("principal")
		}
	case models.AssetSavings:
		if input.Balance == nil || *input.Balance < 0 {
			return missing("balance")
		}
	case models.AssetMutualFund:
		if input.Units == nil || *input.Units <= 0 {
			return missing("units")
		}
	case models.AssetTreasuryBond:
		if input.Units == nil || *input.Units <= 0 {
			return missing("units")
		}
		if input.FaceValue == nil || *input.FaceValue <= 0 {
			return missing("face_value")
		}
	default:
		return apperrors.ErrInvalidAssetKind
	}
	return nil
}

// applyInput copies the input fields onto the asset record.
func applyInput(asset *models.PortfolioAsset, input AssetInput) {
	asset.Name = input.Name
	asset.Category = input.Category
	asset.PurchasePrice = input.PurchasePrice
	asset.PurchaseDate = input.PurchaseDate
	asset.AppraisedValue = input.AppraisedValue
	asset.Bank = input.Bank
	asset.Principal = input.Principal
	asset.Balance = input.Balance
	asset.AnnualRate = input.AnnualRate
	asset.Compounding = input.Compounding
	asset.StartDate = input.StartDate
	asset.MaturityDate = input.MaturityDate
	asset.AutoRenew = input.AutoRenew
	asset.LastUpdated = input.LastUpdated
	asset.FundCode = input.FundCode
	asset.IssueCode = input.IssueCode
	asset.Units = input.Units
	asset.BuyNav = input.BuyNav
	asset.LastNav = input.LastNav
	asset.NavDate = input.NavDate
	asset.FaceValue = input.FaceValue
	asset.CouponRate = input.CouponRate
	asset.CouponFrequency = input.CouponFrequency
	asset.MarketPrice = input.MarketPrice
}

// AddAsset creates a non-tradable asset of the given kind.
func (s *assetService) AddAsset(userID string, kind models.AssetKind, input AssetInput) (*models.PortfolioAsset, error) {
	if err := validateKindFields(kind, input); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	asset := &models.PortfolioAsset{UserID: userID, Kind: kind}
	applyInput(asset, input)

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	ComputeAssetMetrics(asset)
	return asset, nil
}

// ListAssets returns the user's assets with current values computed on read.
// Read failures degrade to an empty page.
func (s *assetService) ListAssets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioAsset], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.PortfolioAsset{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		logger.Get().Warnw("asset list read failed, returning empty", "error", err)
		empty := pagination.NewPageResponse([]models.PortfolioAsset{}, page.Page, page.PageSize, 0)
		return &empty, nil
	}

	var assets []models.PortfolioAsset
	if err := s.db.Where("user_id = ?", userID).Order("created_at").
		Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		logger.Get().Warnw("asset list read failed, returning empty", "error", err)
		empty := pagination.NewPageResponse([]models.PortfolioAsset{}, page.Page, page.PageSize, 0)
		return &empty, nil
	}

	for i := range assets {
		ComputeAssetMetrics(&assets[i])
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssetByID returns one asset with its current value computed.
func (s *assetService) GetAssetByID(userID, assetID string) (*models.PortfolioAsset, error) {
	var asset models.PortfolioAsset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrAssetNotFound, err)
	}
	ComputeAssetMetrics(&asset)
	return &asset, nil
}

// UpdateAsset replaces an asset's user-supplied fields. The kind is fixed at
// creation; the engine never auto-updates principal/balance/face values.
func (s *assetService) UpdateAsset(userID, assetID string, input AssetInput) (*models.PortfolioAsset, error) {
	var asset models.PortfolioAsset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	if err := validateKindFields(asset.Kind, input); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	applyInput(&asset, input)
	if err := s.db.Save(&asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	ComputeAssetMetrics(&asset)
	return &asset, nil
}

// DeleteAsset removes an asset.
func (s *assetService) DeleteAsset(userID, assetID string) error {
	result := s.db.Where("id = ? AND user_id = ?", assetID, userID).Delete(&models.PortfolioAsset{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}
