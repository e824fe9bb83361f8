// Package services contains the portfolio valuation engine and the
// business-logic services over holdings, assets, and users.
package services

import "stockfolio/internal/models"

// PortfolioSummary contains point-in-time valuation of a user's holdings.
// It is derived on every request from current holdings and supplied quotes
// and is never cached or persisted.
type PortfolioSummary struct {
	TotalInvested        float64          `json:"total_invested"`
	CurrentValue         float64          `json:"current_value"`
	TotalGainLoss        float64          `json:"total_gain_loss"`
	TotalGainLossPercent float64          `json:"total_gain_loss_percent"`
	Holdings             []models.Holding `json:"holdings"`
}

// ComputeSummary values each holding against the supplied quotes and returns
// per-lot metrics plus portfolio totals. Pure function: no I/O, deterministic,
// and the output holding order matches the input order.
//
// A holding with no quote for its symbol is valued at its purchase price, so
// a missing quote reads as break-even rather than a fabricated total loss.
func ComputeSummary(holdings []models.Holding, quotes []models.Quote) *PortfolioSummary {
	prices := make(map[string]float64, len(quotes))
	for _, q := range quotes {
		prices[q.Symbol] = q.Price
	}

	summary := &PortfolioSummary{Holdings: make([]models.Holding, len(holdings))}
	for i, h := range holdings {
		price, ok := prices[h.Symbol]
		if !ok {
			price = h.PurchasePrice
		}
		h.CurrentPrice = price
		h.Invested = h.Quantity * h.PurchasePrice
		h.CurrentValue = h.Quantity * price
		h.GainLoss = h.CurrentValue - h.Invested
		h.GainLossPercent = gainPercent(h.GainLoss, h.Invested)
		summary.Holdings[i] = h

		summary.TotalInvested += h.Invested
		summary.CurrentValue += h.CurrentValue
	}

	summary.TotalGainLoss = summary.CurrentValue - summary.TotalInvested
	summary.TotalGainLossPercent = gainPercent(summary.TotalGainLoss, summary.TotalInvested)
	return summary
}

// AggregateBySymbol collapses lots of the same instrument into one logical
// position. Quantities, invested amounts, current values and gains are
// summed; the merged purchase price is the quantity-weighted average cost
// (total invested over total quantity, not an average of prices). Aggregate
// values are order-independent; non-numeric display fields (id, company name,
// notes) keep the first-seen lot's values, and first-appearance order is
// preserved.
func AggregateBySymbol(holdings []models.Holding) []models.Holding {
	index := make(map[string]int, len(holdings))
	merged := make([]models.Holding, 0, len(holdings))

	for _, h := range holdings {
		i, seen := index[h.Symbol]
		if !seen {
			index[h.Symbol] = len(merged)
			merged = append(merged, h)
			continue
		}
		m := &merged[i]
		m.Quantity += h.Quantity
		m.Invested += h.Invested
		m.CurrentValue += h.CurrentValue
		m.GainLoss += h.GainLoss
	}

	for i := range merged {
		m := &merged[i]
		if m.Quantity != 0 {
			m.PurchasePrice = m.Invested / m.Quantity
			m.CurrentPrice = m.CurrentValue / m.Quantity
		}
		m.GainLossPercent = gainPercent(m.GainLoss, m.Invested)
	}
	return merged
}

// gainPercent guards the divide-by-zero: zero invested yields 0, never
// NaN or Inf.
func gainPercent(gain, invested float64) float64 {
	if invested == 0 {
		return 0
	}
	return gain / invested * 100
}
