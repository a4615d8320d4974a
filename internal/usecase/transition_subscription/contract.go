package transition_subscription

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/lifecycle"
	"github.com/m04kA/SMC-AdPlacementService/pkg/assetlock"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
}

// AssetResolver интерфейс каталога рекламных носителей
type AssetResolver interface {
	Resolve(ctx context.Context, assetID int64) (*domain.AssetSnapshot, error)
}

// CandidateLoader загружает конкурирующие подписки носителя
type CandidateLoader interface {
	Candidates(ctx context.Context, sub domain.Subscription) ([]availability.Candidate, error)
}

// StateMachine машина состояний подписки
type StateMachine interface {
	Apply(sub domain.Subscription, op lifecycle.Operation, tc lifecycle.TransitionContext) (domain.Subscription, []lifecycle.Note, error)
}

// AssetLocker эксклюзивная блокировка носителей на время "проверка -> запись"
type AssetLocker interface {
	Lock(ctx context.Context, assetIDs ...int64) (assetlock.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Auditor журнал заметок по подписке
type Auditor interface {
	AppendNote(ctx context.Context, note lifecycle.Note) error
}

// Metrics бизнес-метрики
type Metrics interface {
	ObserveTransition(operation string, result string)
	ObserveConflict(kind string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
