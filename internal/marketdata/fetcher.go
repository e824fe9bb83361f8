package marketdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"stockfolio/internal/models"
)

// envelopeKeys lists the wrapper keys observed across upstream deployments.
// The payload is a bare array on some deployments and an object wrapping the
// array under one of these keys on others (including the misspelled one).
var envelopeKeys = []string{"tradeSummary", "reqTradeSummery", "reqTradeSummary"}

// Fetcher performs the single bulk call against the upstream exchange
// endpoint and turns its payload into normalized, symbol-matched quotes.
type Fetcher struct {
	client  *http.Client
	url     string
	matcher *SymbolMatcher
	log     *zap.SugaredLogger
}

// NewFetcher creates a bulk fetcher. The timeout bounds the one outbound
// call; the fetcher never retries — retry policy belongs to the caller.
func NewFetcher(url string, timeout time.Duration, matcher *SymbolMatcher, log *zap.SugaredLogger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		url:     url,
		matcher: matcher,
		log:     log,
	}
}

// FetchAll performs one POST with an empty JSON body and returns the quotes
// for all tracked instruments present in the response. Records that fail to
// normalize or that reference untracked instruments are dropped individually;
// one bad record never voids the batch. A transport-level failure returns an
// error and no quotes — callers must treat that as "unavailable", not "zero
// instruments exist".
func (f *Fetcher) FetchAll(ctx context.Context) ([]models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("building market data request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market data request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading market data response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("market data response is not valid JSON")
	}

	records := unwrapRecords(gjson.ParseBytes(body))
	asOf := time.Now().UTC().Truncate(24 * time.Hour)

	quotes := make([]models.Quote, 0, len(records))
	for _, rec := range records {
		if !rec.IsObject() {
			f.log.Warnw("skipping non-object record in market data payload", "raw", rec.Raw)
			continue
		}
		q := NormalizeQuote(rec, asOf)
		code, ok := f.matcher.Match(q.Symbol)
		if !ok {
			continue
		}
		q.Symbol = code
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// unwrapRecords extracts the record list from the payload, probing the known
// envelope keys in order and finally accepting an array-shaped payload as-is.
// Anything else yields an empty batch.
func unwrapRecords(root gjson.Result) []gjson.Result {
	for _, key := range envelopeKeys {
		if v := root.Get(key); v.IsArray() {
			return v.Array()
		}
	}
	if root.IsArray() {
		return root.Array()
	}
	return nil
}
