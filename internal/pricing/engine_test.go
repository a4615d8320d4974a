package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got.String())
}

func billboard() domain.AssetSnapshot {
	return domain.AssetSnapshot{
		AssetID:   1,
		Name:      "Pantalla LED 3x2",
		BasePrice: decimal.NewFromInt(1_000_000),
		Attributes: []domain.AttributeValue{
			{Attribute: "Ubicación", Value: "Fachada", PriceExtra: decimal.NewFromInt(200_000)},
			{Attribute: "Ubicación", Value: "Pasillo", PriceExtra: decimal.NewFromInt(80_000)},
			{Attribute: "Tipo de contenido", Value: "Video", PriceExtra: decimal.NewFromInt(300_000)},
			{Attribute: "Formato", Value: "Vertical"},
			{Attribute: "Tamaño", Value: "3x2 m"},
		},
		StockQuantity:   1,
		TechnicalStatus: domain.TechnicalOperational,
	}
}

func TestComputeMonthlyPrice_EndToEnd(t *testing.T) {
	e := NewEngine(nil)
	sel := domain.Selections{
		Site:        domain.SiteBuenavista,
		Zone:        domain.ZoneFacade,
		ContentType: domain.ContentVideo,
	}

	b := e.Compute(sel, billboard())

	assertDecimal(t, 1_000_000, b.Base)
	assertDecimal(t, 1_500_000, b.Prestige)
	assertDecimal(t, 200_000, b.ZoneSurcharge)
	assertDecimal(t, 300_000, b.ContentSurcharge)
	assertDecimal(t, 3_000_000, b.MonthlyPrice)
	assertDecimal(t, 3_000_000, e.ComputeMonthlyPrice(sel, billboard()))
}

func TestComputeMonthlyPrice_IsPure(t *testing.T) {
	e := NewEngine(nil)
	asset := billboard()
	sel := domain.Selections{Site: domain.SiteViva, Zone: domain.ZoneCorridor, ContentType: domain.ContentVideo}

	first := e.ComputeMonthlyPrice(sel, asset)
	for i := 0; i < 5; i++ {
		assert.True(t, first.Equal(e.ComputeMonthlyPrice(sel, asset)))
	}
	assertDecimal(t, 1_000_000+1_000_000+80_000+300_000, first)
	assert.Equal(t, billboard(), asset)
}

func TestComputeMonthlyPrice_Overrides(t *testing.T) {
	e := NewEngine(nil)
	base := domain.Selections{Site: domain.SiteUnico, Zone: domain.ZoneFacade, ContentType: domain.ContentVideo}

	tests := []struct {
		name    string
		zone    decimal.NullDecimal
		content decimal.NullDecimal
		want    int64
	}{
		{"absent overrides use derived", decimal.NullDecimal{}, decimal.NullDecimal{}, 1_500_000},
		{"zero override falls back", decimal.NewNullDecimal(decimal.Zero), decimal.NewNullDecimal(decimal.Zero), 1_500_000},
		{"negative override falls back", decimal.NewNullDecimal(decimal.NewFromInt(-5)), decimal.NullDecimal{}, 1_500_000},
		{"positive zone override replaces", decimal.NewNullDecimal(decimal.NewFromInt(50_000)), decimal.NullDecimal{}, 1_350_000},
		{"positive content override replaces", decimal.NullDecimal{}, decimal.NewNullDecimal(decimal.NewFromInt(1)), 1_200_001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := base
			sel.ZoneSurchargeOverride = tt.zone
			sel.ContentSurchargeOverride = tt.content
			assertDecimal(t, tt.want, e.ComputeMonthlyPrice(sel, billboard()))
		})
	}
}

func TestComputeMonthlyPrice_MissingDataIsZero(t *testing.T) {
	e := NewEngine(nil)

	assertDecimal(t, 0, e.ComputeMonthlyPrice(domain.Selections{}, domain.AssetSnapshot{}))

	asset := domain.AssetSnapshot{BasePrice: decimal.NewFromInt(100), PriceExtra: decimal.NewFromInt(20)}
	sel := domain.Selections{Site: domain.SitePlazaCentral, Zone: domain.ZoneEntrance, ContentType: domain.ContentStatic}
	assertDecimal(t, 120, e.ComputeMonthlyPrice(sel, asset))
}

func TestPrestige(t *testing.T) {
	e := NewEngine(nil)
	assertDecimal(t, 1_500_000, e.Prestige(domain.SiteBuenavista))
	assertDecimal(t, 1_000_000, e.Prestige(domain.SiteViva))
	assertDecimal(t, 500_000, e.Prestige(domain.SiteMallplaza))
	assertDecimal(t, 0, e.Prestige(domain.SiteUnico))
	assertDecimal(t, 0, e.Prestige("unknown"))

	custom := NewEngine(map[domain.Site]decimal.Decimal{domain.SiteUnico: decimal.NewFromInt(10)})
	assertDecimal(t, 10, custom.Prestige(domain.SiteUnico))
	assertDecimal(t, 0, custom.Prestige(domain.SiteBuenavista))
}

func TestResolveTechnicalSpecs(t *testing.T) {
	format, size := ResolveTechnicalSpecs(billboard())
	assert.Equal(t, "Vertical", format)
	assert.Equal(t, "3x2 m", size)

	format, size = ResolveTechnicalSpecs(domain.AssetSnapshot{})
	assert.Empty(t, format)
	assert.Empty(t, size)
}

func TestInferSite(t *testing.T) {
	asset := domain.AssetSnapshot{Attributes: []domain.AttributeValue{
		{Attribute: "Formato", Value: "Viva"},
		{Attribute: "Centro comercial", Value: "C.C. Plaza Central"},
	}}

	site, ok := InferSite(asset)
	assert.True(t, ok)
	assert.Equal(t, domain.SitePlazaCentral, site)

	_, ok = InferSite(billboard())
	assert.False(t, ok)
}
