package quote_price

import (
	"context"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
)

// AssetResolver интерфейс каталога рекламных носителей
type AssetResolver interface {
	Resolve(ctx context.Context, assetID int64) (*domain.AssetSnapshot, error)
}

// PricingEngine интерфейс расчёта месячной цены с разбивкой
type PricingEngine interface {
	Compute(sel domain.Selections, asset domain.AssetSnapshot) pricing.Breakdown
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
