package create_subscription

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/partnerservice"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
}

// ContractRepository интерфейс репозитория рамочных договоров
type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FrameworkContract, error)
}

// AssetResolver интерфейс каталога рекламных носителей
type AssetResolver interface {
	Resolve(ctx context.Context, assetID int64) (*domain.AssetSnapshot, error)
}

// PartnerServiceClient интерфейс клиента для PartnerService
type PartnerServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*partnerservice.Customer, error)
}

// PricingEngine интерфейс расчёта месячной цены
type PricingEngine interface {
	ComputeMonthlyPrice(sel domain.Selections, asset domain.AssetSnapshot) decimal.Decimal
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
