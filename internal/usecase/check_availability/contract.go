package check_availability

import (
	"context"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
}

// AssetResolver интерфейс каталога рекламных носителей
type AssetResolver interface {
	Resolve(ctx context.Context, assetID int64) (*domain.AssetSnapshot, error)
}

// CandidateLoader загружает конкурирующие подписки носителя
type CandidateLoader interface {
	Candidates(ctx context.Context, sub domain.Subscription) ([]availability.Candidate, error)
}

// AvailabilityChecker проверка доступности носителя
type AvailabilityChecker interface {
	Check(sub domain.Subscription, asset domain.AssetSnapshot, candidates []availability.Candidate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
