package services

import "stockfolio/internal/models"

// ComputeAssetMetrics populates the transient current value of a non-tradable
// asset. Each kind has its own rule; every optional field has a defined
// fallback, so the computation never fails:
//
//	fixed_asset   — appraised value if present, else purchase price
//	fixed_deposit — principal (accrued interest is not projected)
//	savings       — balance
//	mutual_fund   — units x (last NAV, else buy NAV, else 0)
//	treasury_bond — units x (market price, else face value)
func ComputeAssetMetrics(a *models.PortfolioAsset) {
	switch a.Kind {
	case models.AssetFixedAsset:
		if a.AppraisedValue != nil {
			a.CurrentValue = *a.AppraisedValue
		} else {
			a.CurrentValue = floatValue(a.PurchasePrice)
		}
	case models.AssetFixedDeposit:
		a.CurrentValue = floatValue(a.Principal)
	case models.AssetSavings:
		a.CurrentValue = floatValue(a.Balance)
	case models.AssetMutualFund:
		a.CurrentValue = floatValue(a.Units) * coalesce(a.LastNav, a.BuyNav)
	case models.AssetTreasuryBond:
		a.CurrentValue = floatValue(a.Units) * coalesce(a.MarketPrice, a.FaceValue)
	default:
		a.CurrentValue = 0
	}
}

func floatValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// coalesce returns the first non-nil value, or 0.
func coalesce(ps ...*float64) float64 {
	for _, p := range ps {
		if p != nil {
			return *p
		}
	}
	return 0
}
