package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockfolio/internal/marketdata"
	"stockfolio/internal/models"
)

// QuoteResolver resolves the latest quotes and reports which source won.
type QuoteResolver interface {
	ResolveLatest(ctx context.Context) ([]models.Quote, marketdata.Source)
}

// QuoteHandler serves latest-quote requests.
type QuoteHandler struct {
	resolver QuoteResolver
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(resolver QuoteResolver) *QuoteHandler {
	return &QuoteHandler{resolver: resolver}
}

// GetLatestQuotes returns the latest quotes for all tracked instruments.
// The source tag tells the UI whether data came from the snapshot store or a
// live fetch; "synthetic" with an empty list means no source was available
// and the client should show placeholders.
// @Summary     Latest quotes
// @Description Latest snapshot for all tracked instruments with its source tag
// @Tags        quotes
// @Produce     json
// @Success     200 {object} map[string]interface{} "Source tag and quotes"
// @Router      /quotes/latest [get]
func (h *QuoteHandler) GetLatestQuotes(c *gin.Context) {
	quotes, source := h.resolver.ResolveLatest(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"source": source,
		"quotes": quotes,
	})
}
