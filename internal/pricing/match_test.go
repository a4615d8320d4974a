package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Ubicación  ", "ubicacion"},
		{"Tipo   de\tContenido", "tipo de contenido"},
		{"Tamaño", "tamano"},
		{"FOOD Court", "food court"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestAttributeKinds(t *testing.T) {
	assert.True(t, IsLocationAttribute("Location"))
	assert.True(t, IsLocationAttribute("Ubicación en el centro"))
	assert.False(t, IsLocationAttribute("Formato"))

	assert.True(t, IsContentAttribute("Content Type"))
	assert.True(t, IsContentAttribute("Tipo de pauta"))
	assert.True(t, IsContentAttribute("Contenido"))
	assert.False(t, IsContentAttribute("Tamaño"))
}

func TestMatchesZone(t *testing.T) {
	tests := []struct {
		name  string
		value string
		zone  domain.Zone
		want  bool
	}{
		{"exact label", "Facade", domain.ZoneFacade, true},
		{"catalog alias", "Fachada Principal", domain.ZoneFacade, true},
		{"value inside label", "Food", domain.ZoneFoodCourt, true},
		{"accent and case", "PLAZOLETA de Comidas", domain.ZoneFoodCourt, true},
		{"other zone", "Pasillo norte", domain.ZoneEntrance, false},
		{"empty value", "   ", domain.ZoneCorridor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesZone(tt.value, tt.zone))
		})
	}
}

func TestMatchZone_FirstMatchWins(t *testing.T) {
	attrs := []domain.AttributeValue{
		{Attribute: "Tipo", Value: "Fachada", PriceExtra: decimal.NewFromInt(999)},
		{Attribute: "Ubicación", Value: "Entrada", PriceExtra: decimal.NewFromInt(50)},
		{Attribute: "Ubicación", Value: "Fachada", PriceExtra: decimal.NewFromInt(200)},
		{Attribute: "Location", Value: "Facade", PriceExtra: decimal.NewFromInt(700)},
	}

	got, ok := MatchZone(attrs, domain.ZoneFacade)

	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(200).Equal(got.PriceExtra), got.PriceExtra.String())

	_, ok = MatchZone(attrs, "")
	assert.False(t, ok)
}

func TestMatchContent_Accumulates(t *testing.T) {
	attrs := []domain.AttributeValue{
		{Attribute: "Tipo de contenido", Value: "Video HD", PriceExtra: decimal.NewFromInt(100)},
		{Attribute: "Content", Value: "video loop", PriceExtra: decimal.NewFromInt(50)},
		{Attribute: "Content", Value: "Static", PriceExtra: decimal.NewFromInt(10)},
		{Attribute: "Ubicación", Value: "video wall", PriceExtra: decimal.NewFromInt(5)},
	}

	assert.Len(t, MatchContent(attrs, domain.ContentVideo), 2)
	assert.Empty(t, MatchContent(attrs, domain.ContentStatic))
}
