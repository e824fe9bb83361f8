package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
)

// HoldingHandler handles holding, transaction, and portfolio summary requests.
type HoldingHandler struct {
	holdingService services.HoldingServicer
	resolver       QuoteResolver
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer, resolver QuoteResolver) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService, resolver: resolver}
}

// AddHoldingRequest represents the request payload for recording a purchase.
type AddHoldingRequest struct {
	Symbol        string    `json:"symbol" binding:"required,symbol"`
	CompanyName   string    `json:"company_name" binding:"max=200"`
	Quantity      float64   `json:"quantity" binding:"required,gt=0"`
	PurchasePrice float64   `json:"purchase_price" binding:"required,gt=0"`
	PurchaseDate  time.Time `json:"purchase_date" binding:"required"`
	Notes         string    `json:"notes" binding:"max=500"`
}

// UpdateHoldingRequest represents the request payload for editing a holding.
// Absent fields are left unchanged.
type UpdateHoldingRequest struct {
	CompanyName   *string    `json:"company_name,omitempty" binding:"omitempty,max=200"`
	Quantity      *float64   `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	PurchasePrice *float64   `json:"purchase_price,omitempty" binding:"omitempty,gt=0"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	Notes         *string    `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// AddHolding records a new purchase lot and its buy transaction.
// @Summary     Add holding
// @Description Record a purchase lot; also writes the matching buy transaction atomically
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddHoldingRequest true "Purchase details"
// @Success     201 {object} map[string]interface{} "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input or untracked symbol"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /holdings [post]
func (h *HoldingHandler) AddHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.AddHolding(userID, services.HoldingInput{
		Symbol:        req.Symbol,
		CompanyName:   req.CompanyName,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// ListHoldings returns the user's lots.
// @Summary     List holdings
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Holdings page"
// @Router      /holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
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

	result, err := h.holdingService.ListHoldings(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHolding returns a single lot by ID.
// @Summary     Get holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} map[string]interface{} "Holding"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHoldingByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// UpdateHolding edits a lot in place.
// @Summary     Update holding
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Param       request body UpdateHoldingRequest true "Fields to change"
// @Success     200 {object} map[string]interface{} "Updated holding"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.UpdateHolding(userID, c.Param("id"), services.HoldingUpdate{
		CompanyName:   req.CompanyName,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// DeleteHolding removes a lot; its transactions remain.
// @Summary     Delete holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} map[string]interface{} "Deleted"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListTransactions returns the user's trade log.
// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Transactions page"
// @Router      /transactions [get]
func (h *HoldingHandler) ListTransactions(c *gin.Context) {
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

	result, err := h.holdingService.ListTransactions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPortfolioSummary values the user's holdings against the latest quotes.
// @Summary     Portfolio summary
// @Description Point-in-time valuation of all lots; aggregate=true collapses lots per symbol
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       aggregate query bool false "Collapse lots of the same symbol"
// @Success     200 {object} map[string]interface{} "Summary with quote source tag"
// @Router      /portfolio/summary [get]
func (h *HoldingHandler) GetPortfolioSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	aggregate := c.Query("aggregate") == "true"
	quotes, source := h.resolver.ResolveLatest(c.Request.Context())

	summary, err := h.holdingService.GetPortfolioSummary(userID, quotes, aggregate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":      summary,
		"quote_source": source,
	})
}
