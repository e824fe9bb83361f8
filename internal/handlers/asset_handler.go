package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
)

// AssetHandler handles non-tradable portfolio asset requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// AssetRequest represents the request payload for creating or updating an
// asset. Which fields are required depends on the kind; the service rejects
// payloads missing their kind's fields.
type AssetRequest struct {
	Kind            string     `json:"kind" binding:"required,asset_kind"`
	Name            string     `json:"name" binding:"required,max=200"`
	Category        string     `json:"category" binding:"max=100"`
	PurchasePrice   *float64   `json:"purchase_price,omitempty" binding:"omitempty,gte=0"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	AppraisedValue  *float64   `json:"appraised_value,omitempty" binding:"omitempty,gte=0"`
	Bank            string     `json:"bank,omitempty" binding:"max=100"`
	Principal       *float64   `json:"principal,omitempty" binding:"omitempty,gte=0"`
	Balance         *float64   `json:"balance,omitempty" binding:"omitempty,gte=0"`
	AnnualRate      *float64   `json:"annual_rate,omitempty" binding:"omitempty,gte=0"`
	Compounding     string     `json:"compounding,omitempty" binding:"omitempty,compounding"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	MaturityDate    *time.Time `json:"maturity_date,omitempty"`
	AutoRenew       bool       `json:"auto_renew,omitempty"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
	FundCode        string     `json:"fund_code,omitempty" binding:"max=50"`
	IssueCode       string     `json:"issue_code,omitempty" binding:"max=50"`
	Units           *float64   `json:"units,omitempty" binding:"omitempty,gte=0"`
	BuyNav          *float64   `json:"buy_nav,omitempty" binding:"omitempty,gte=0"`
	LastNav         *float64   `json:"last_nav,omitempty" binding:"omitempty,gte=0"`
	NavDate         *time.Time `json:"nav_date,omitempty"`
	FaceValue       *float64   `json:"face_value,omitempty" binding:"omitempty,gte=0"`
	CouponRate      *float64   `json:"coupon_rate,omitempty" binding:"omitempty,gte=0"`
	CouponFrequency string     `json:"coupon_frequency,omitempty" binding:"max=20"`
	MarketPrice     *float64   `json:"market_price,omitempty" binding:"omitempty,gte=0"`
}

func (r *AssetRequest) toInput() services.AssetInput {
	return services.AssetInput{
		Name:            r.Name,
		Category:        r.Category,
		PurchasePrice:   r.PurchasePrice,
		PurchaseDate:    r.PurchaseDate,
		AppraisedValue:  r.AppraisedValue,
		Bank:            r.Bank,
		Principal:       r.Principal,
		Balance:         r.Balance,
		AnnualRate:      r.AnnualRate,
		Compounding:     r.Compounding,
		StartDate:       r.StartDate,
		MaturityDate:    r.MaturityDate,
		AutoRenew:       r.AutoRenew,
		LastUpdated:     r.LastUpdated,
		FundCode:        r.FundCode,
		IssueCode:       r.IssueCode,
		Units:           r.Units,
		BuyNav:          r.BuyNav,
		LastNav:         r.LastNav,
		NavDate:         r.NavDate,
		FaceValue:       r.FaceValue,
		CouponRate:      r.CouponRate,
		CouponFrequency: r.CouponFrequency,
		MarketPrice:     r.MarketPrice,
	}
}

// AddAsset creates a non-tradable asset.
// @Summary     Add asset
// @Description Create a fixed asset, fixed deposit, savings account, mutual fund holding, or treasury bond
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AssetRequest true "Asset details"
// @Success     201 {object} map[string]interface{} "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown kind"
// @Router      /assets [post]
func (h *AssetHandler) AddAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.AddAsset(userID, models.AssetKind(req.Kind), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// ListAssets returns the user's assets with current values computed.
// @Summary     List assets
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Assets page"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.ListAssets(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset returns a single asset by ID.
// @Summary     Get asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]interface{} "Asset"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset replaces an asset's details. The kind cannot change.
// @Summary     Update asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Param       request body AssetRequest true "Asset details"
// @Success     200 {object} map[string]interface{} "Updated asset"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(userID, c.Param("id"), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset removes an asset.
// @Summary     Delete asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]interface{} "Deleted"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
