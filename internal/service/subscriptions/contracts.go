package subscriptions

import (
	"context"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	GetByAssetWithFilter(ctx context.Context, filter domain.AssetSubscriptionsFilter) ([]*domain.Subscription, error)
	ListByCustomer(ctx context.Context, filter domain.CustomerSubscriptionsFilter) ([]*domain.Subscription, error)
}

// ContractRepository интерфейс репозитория рамочных договоров
type ContractRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.FrameworkContract, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
