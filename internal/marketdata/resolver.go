package marketdata

import (
	"context"

	"go.uber.org/zap"

	"stockfolio/internal/models"
)

// Source tags which upstream satisfied a quote resolution. It is advisory —
// returned alongside the quotes for UI banners and diagnostics, never part of
// the valuation contract.
type Source string

const (
	// SourcePersisted means the snapshot store held quotes for a recent date.
	SourcePersisted Source = "persisted"
	// SourceLive means the store was empty and the live bulk fetch won.
	SourceLive Source = "live"
	// SourceSynthetic means no source produced data; callers are expected to
	// substitute presentation-layer placeholders. The pipeline itself never
	// fabricates quotes.
	SourceSynthetic Source = "synthetic"
)

// QuoteFetcher is the live-fetch side of the resolution fallback.
type QuoteFetcher interface {
	FetchAll(ctx context.Context) ([]models.Quote, error)
}

// Resolver answers "latest prices" requests through a strict, ordered
// fallback: persisted snapshot, then live fetch, then empty. Exactly one
// source wins per call; partial results are never blended across sources.
type Resolver struct {
	store   QuoteStore
	fetcher QuoteFetcher
	log     *zap.SugaredLogger
}

// NewResolver creates a Resolver over the given store and fetcher.
func NewResolver(store QuoteStore, fetcher QuoteFetcher, log *zap.SugaredLogger) *Resolver {
	return &Resolver{store: store, fetcher: fetcher, log: log}
}

// ResolveLatest returns the latest quotes and the source that produced them.
// Store read errors are absorbed as "not found"; fetch errors are absorbed as
// "unavailable". Nothing on this path is fatal.
func (r *Resolver) ResolveLatest(ctx context.Context) ([]models.Quote, Source) {
	quotes, err := r.store.LatestQuotes(ctx)
	if err != nil {
		r.log.Warnw("quote store read failed, falling back to live fetch", "error", err)
		quotes = nil
	}
	if len(quotes) > 0 {
		return quotes, SourcePersisted
	}

	quotes, err = r.fetcher.FetchAll(ctx)
	if err != nil {
		r.log.Warnw("live market data fetch failed", "error", err)
		quotes = nil
	}
	if len(quotes) > 0 {
		// Populate the snapshot store so the next request resolves from it.
		// Best effort: a write failure here must not degrade the response.
		if err := r.store.SaveQuotes(ctx, quotes); err != nil {
			r.log.Warnw("failed to persist live quotes", "error", err, "count", len(quotes))
		}
		return quotes, SourceLive
	}

	return []models.Quote{}, SourceSynthetic
}
