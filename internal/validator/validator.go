// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// symbolRegex matches tracked-instrument codes: short uppercase tickers.
var symbolRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,9}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("symbol", validateSymbol)
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("asset_kind", validateAssetKind)
		_ = v.RegisterValidation("compounding", validateCompounding)
	}
}

func validateSymbol(fl validator.FieldLevel) bool {
	return symbolRegex.MatchString(fl.Field().String())
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "buy", "sell":
		return true
	}
	return false
}

func validateAssetKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed_asset", "fixed_deposit", "savings", "mutual_fund", "treasury_bond":
		return true
	}
	return false
}

func validateCompounding(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "monthly", "quarterly", "annually", "maturity":
		return true
	}
	return false
}
