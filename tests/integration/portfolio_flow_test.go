package integration

import (
	"net/http"
	"testing"
)

const upstreamTradeSummary = `{"reqTradeSummery": [
	{"symbol": "JKH.N0000", "name": "John Keells Holdings", "price": 195.5, "previousClose": 194.0, "volume": 1250000},
	{"symbol": "COMB.N0000", "name": "Commercial Bank", "closingPrice": 101.25},
	{"symbol": "XYZ.N0000", "price": 10}
]}`

func TestPortfolioFlow_AddValueAggregate(t *testing.T) {
	app := setupAppWithUpstream(t, upstreamTradeSummary)
	token, _ := app.registerUser(t, "portfolio@test.com", "password123")

	// Step 1: Record two lots of the same instrument.
	rec := app.request("POST", "/api/v1/holdings",
		`{"symbol":"JKH","company_name":"John Keells Holdings","quantity":10,"purchase_price":100,"purchase_date":"2024-01-15T00:00:00Z"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add holding failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/holdings",
		`{"symbol":"JKH","quantity":10,"purchase_price":200,"purchase_date":"2024-02-15T00:00:00Z"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add second holding failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 2: Each purchase produced a buy transaction.
	rec = app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list transactions failed: %d %s", rec.Code, rec.Body.String())
	}
	transactions := parseJSON(t, rec)["data"].([]interface{})
	if len(transactions) != 2 {
		t.Fatalf("expected 2 buy transactions, got %d", len(transactions))
	}

	// Step 3: Latest quotes resolve live from the upstream stub; the
	// untracked XYZ record is dropped.
	rec = app.request("GET", "/api/v1/quotes/latest", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("quotes failed: %d %s", rec.Code, rec.Body.String())
	}
	quoteResult := parseJSON(t, rec)
	if quoteResult["source"] != "live" {
		t.Errorf("expected source live, got %v", quoteResult["source"])
	}
	quotes := quoteResult["quotes"].([]interface{})
	if len(quotes) != 2 {
		t.Fatalf("expected 2 tracked quotes, got %d", len(quotes))
	}

	// Step 4: A second request is served from the snapshot store.
	rec = app.request("GET", "/api/v1/quotes/latest", "", "")
	if src := parseJSON(t, rec)["source"]; src != "persisted" {
		t.Errorf("expected source persisted on second call, got %v", src)
	}

	// Step 5: Per-lot summary values both lots at the live price.
	rec = app.request("GET", "/api/v1/portfolio/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if got := summary["total_invested"].(float64); got != 3000 {
		t.Errorf("expected total invested 3000, got %f", got)
	}
	if got := summary["current_value"].(float64); got != 3910 {
		t.Errorf("expected current value 3910, got %f", got)
	}
	if lots := summary["holdings"].([]interface{}); len(lots) != 2 {
		t.Errorf("expected 2 lots in per-lot view, got %d", len(lots))
	}

	// Step 6: Aggregated view collapses the lots into one position with a
	// quantity-weighted average cost.
	rec = app.request("GET", "/api/v1/portfolio/summary?aggregate=true", "", token)
	summary = parseJSON(t, rec)["summary"].(map[string]interface{})
	positions := summary["holdings"].([]interface{})
	if len(positions) != 1 {
		t.Fatalf("expected 1 aggregated position, got %d", len(positions))
	}
	position := positions[0].(map[string]interface{})
	if got := position["quantity"].(float64); got != 20 {
		t.Errorf("expected aggregated quantity 20, got %f", got)
	}
	if got := position["purchase_price"].(float64); got != 150 {
		t.Errorf("expected weighted average cost 150, got %f", got)
	}
}

func TestPortfolioFlow_UntrackedSymbolRejected(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "untracked@test.com", "password123")

	rec := app.request("POST", "/api/v1/holdings",
		`{"symbol":"AAPL","quantity":10,"purchase_price":100,"purchase_date":"2024-01-15T00:00:00Z"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for untracked symbol, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "UNTRACKED_SYMBOL" {
		t.Errorf("expected UNTRACKED_SYMBOL, got %v", errObj["code"])
	}
}

func TestPortfolioFlow_EmptySourcesAreSynthetic(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/quotes/latest", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("quotes failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["source"] != "synthetic" {
		t.Errorf("expected source synthetic, got %v", result["source"])
	}
	if quotes := result["quotes"].([]interface{}); len(quotes) != 0 {
		t.Errorf("expected no quotes, got %d", len(quotes))
	}
}

func TestPortfolioFlow_MissingQuoteFallsBackToCost(t *testing.T) {
	app := setupApp(t) // upstream returns no instruments
	token, _ := app.registerUser(t, "fallback@test.com", "password123")

	rec := app.request("POST", "/api/v1/holdings",
		`{"symbol":"SAMP","quantity":10,"purchase_price":80,"purchase_date":"2024-01-15T00:00:00Z"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add holding failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/portfolio/summary", "", token)
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	lot := summary["holdings"].([]interface{})[0].(map[string]interface{})
	if got := lot["current_price"].(float64); got != 80 {
		t.Errorf("expected fallback current price 80, got %f", got)
	}
	if got := summary["total_gain_loss"].(float64); got != 0 {
		t.Errorf("expected break-even gain 0, got %f", got)
	}
}
