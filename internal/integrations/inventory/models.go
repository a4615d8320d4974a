package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Asset модель рекламного носителя из каталога
type Asset struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	BasePrice       decimal.Decimal  `json:"base_price"`
	PriceExtra      decimal.Decimal  `json:"price_extra"`
	StockQuantity   int              `json:"stock_quantity"`
	TechnicalStatus string           `json:"technical_status"`
	Attributes      []AttributeValue `json:"attributes"`
}

// AttributeValue значение атрибута варианта носителя с надбавкой
type AttributeValue struct {
	Attribute  string          `json:"attribute"`
	Value      string          `json:"value"`
	PriceExtra decimal.Decimal `json:"price_extra"`
}

// ToDomain преобразует ответ каталога в снимок носителя
// Отсутствующий технический статус означает operational, неизвестный сохраняется
// как есть и считается неработоспособным
func (a Asset) ToDomain() domain.AssetSnapshot {
	attrs := make([]domain.AttributeValue, 0, len(a.Attributes))
	for _, v := range a.Attributes {
		attrs = append(attrs, domain.AttributeValue{
			Attribute:  v.Attribute,
			Value:      v.Value,
			PriceExtra: v.PriceExtra,
		})
	}

	status := domain.TechnicalStatus(strings.TrimSpace(a.TechnicalStatus))
	if status == "" {
		status = domain.TechnicalOperational
	}

	return domain.AssetSnapshot{
		AssetID:         a.ID,
		Name:            a.Name,
		BasePrice:       a.BasePrice,
		PriceExtra:      a.PriceExtra,
		Attributes:      attrs,
		StockQuantity:   a.StockQuantity,
		TechnicalStatus: status,
	}
}
