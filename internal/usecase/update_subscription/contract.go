package update_subscription

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/pkg/assetlock"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
}

// ContractRepository интерфейс репозитория рамочных договоров
type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FrameworkContract, error)
}

// AssetResolver интерфейс каталога рекламных носителей
type AssetResolver interface {
	Resolve(ctx context.Context, assetID int64) (*domain.AssetSnapshot, error)
}

// CandidateLoader загружает конкурирующие подписки носителя
type CandidateLoader interface {
	Candidates(ctx context.Context, sub domain.Subscription) ([]availability.Candidate, error)
}

// AvailabilityGuard повторная проверка доступности для защищённых состояний
type AvailabilityGuard interface {
	Revalidate(sub domain.Subscription, asset domain.AssetSnapshot, candidates []availability.Candidate) error
}

// PricingEngine интерфейс расчёта месячной цены
type PricingEngine interface {
	ComputeMonthlyPrice(sel domain.Selections, asset domain.AssetSnapshot) decimal.Decimal
}

// AssetLocker эксклюзивная блокировка носителей на время "проверка -> запись"
type AssetLocker interface {
	Lock(ctx context.Context, assetIDs ...int64) (assetlock.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики
type Metrics interface {
	ObserveConflict(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
