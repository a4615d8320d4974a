package domain

import "github.com/shopspring/decimal"

// DefaultCurrencyPrecision is used when no precision is configured
const DefaultCurrencyPrecision = 2

// CurrencyPrecision defines how money is rounded for display.
// It is a presentation concern and is never applied inside computations.
type CurrencyPrecision struct {
	Places int32
}

// Round rounds an amount half away from zero to the configured places
func (p CurrencyPrecision) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(p.Places)
}

// Format renders an amount with exactly the configured number of decimals
func (p CurrencyPrecision) Format(amount decimal.Decimal) string {
	return amount.StringFixed(p.Places)
}
