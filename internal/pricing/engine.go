package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// DefaultPrestige is the monthly site-prestige surcharge per venue tier
var DefaultPrestige = map[domain.Site]decimal.Decimal{
	domain.SiteBuenavista:   decimal.NewFromInt(1_500_000), // diamond
	domain.SiteViva:         decimal.NewFromInt(1_000_000), // gold
	domain.SiteMallplaza:    decimal.NewFromInt(500_000),   // silver
	domain.SiteUnico:        decimal.Zero,
	domain.SitePlazaCentral: decimal.Zero,
}

// Breakdown lists each component of a monthly price
type Breakdown struct {
	Base             decimal.Decimal // list price + variant extra
	Prestige         decimal.Decimal
	ZoneSurcharge    decimal.Decimal // effective: override or derived
	ContentSurcharge decimal.Decimal // effective: override or derived
	MonthlyPrice     decimal.Decimal
}

// Engine derives the recurring monthly price of a subscription.
// It is pure: the same selections and snapshot always give the same price.
type Engine struct {
	prestige map[domain.Site]decimal.Decimal
}

// NewEngine creates an engine with the given prestige table; nil uses DefaultPrestige
func NewEngine(prestige map[domain.Site]decimal.Decimal) *Engine {
	if prestige == nil {
		prestige = DefaultPrestige
	}
	table := make(map[domain.Site]decimal.Decimal, len(prestige))
	for site, amount := range prestige {
		table[site] = amount
	}
	return &Engine{prestige: table}
}

// ComputeMonthlyPrice returns base + prestige + zone + content surcharges
func (e *Engine) ComputeMonthlyPrice(sel domain.Selections, asset domain.AssetSnapshot) decimal.Decimal {
	return e.Compute(sel, asset).MonthlyPrice
}

// Compute returns the monthly price together with its components.
// Missing data contributes zero; no rounding is applied.
func (e *Engine) Compute(sel domain.Selections, asset domain.AssetSnapshot) Breakdown {
	b := Breakdown{
		Base:     asset.BasePrice.Add(asset.PriceExtra),
		Prestige: e.Prestige(sel.Site),
	}

	b.ZoneSurcharge = effective(sel.ZoneSurchargeOverride, ZoneSurcharge(asset.Attributes, sel.Zone))
	b.ContentSurcharge = effective(sel.ContentSurchargeOverride, ContentSurcharge(asset.Attributes, sel.ContentType))

	b.MonthlyPrice = b.Base.Add(b.Prestige).Add(b.ZoneSurcharge).Add(b.ContentSurcharge)
	return b
}

// Prestige returns the fixed surcharge of a site; unlisted sites add zero
func (e *Engine) Prestige(site domain.Site) decimal.Decimal {
	if amount, ok := e.prestige[site]; ok {
		return amount
	}
	return decimal.Zero
}

// ZoneSurcharge returns the surcharge of the matched zone triple, zero when none matches
func ZoneSurcharge(attrs []domain.AttributeValue, zone domain.Zone) decimal.Decimal {
	if a, ok := MatchZone(attrs, zone); ok {
		return a.PriceExtra
	}
	return decimal.Zero
}

// ContentSurcharge sums the surcharges of every matched content triple
func ContentSurcharge(attrs []domain.AttributeValue, content domain.ContentType) decimal.Decimal {
	total := decimal.Zero
	for _, a := range MatchContent(attrs, content) {
		total = total.Add(a.PriceExtra)
	}
	return total
}

// effective returns the override when it is set and strictly positive, otherwise derived
func effective(override decimal.NullDecimal, derived decimal.Decimal) decimal.Decimal {
	if override.Valid && override.Decimal.GreaterThan(decimal.Zero) {
		return override.Decimal
	}
	return derived
}
