package transition_subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/inventory"
	"github.com/m04kA/SMC-AdPlacementService/internal/lifecycle"
	"github.com/m04kA/SMC-AdPlacementService/pkg/assetlock"
	"github.com/m04kA/SMC-AdPlacementService/pkg/txmanager"
)

// noteTimeout ограничивает доставку заметок после коммита
const noteTimeout = 5 * time.Second

// UseCase use case для операций жизненного цикла подписки
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	assetResolver    AssetResolver
	candidates       CandidateLoader
	machine          StateMachine
	locker           AssetLocker
	txManager        TransactionManager
	auditor          Auditor
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	assetResolver AssetResolver,
	candidates CandidateLoader,
	machine StateMachine,
	locker AssetLocker,
	txManager TransactionManager,
	auditor Auditor,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		assetResolver:    assetResolver,
		candidates:       candidates,
		machine:          machine,
		locker:           locker,
		txManager:        txManager,
		auditor:          auditor,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет операцию жизненного цикла
// Переход в confirmed/active проверяет доступность носителя под блокировкой носителя
// в serializable транзакции. Заметки отправляются только после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionSubscription: actor=%d, subscription=%d, operation=%s",
		req.ActorID, req.SubscriptionID, req.Operation)

	// 1. Валидация входных данных
	if req.SubscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}
	op, err := lifecycle.ParseOperation(req.Operation)
	if err != nil {
		uc.logger.Warn("TransitionSubscription: %v", err)
		uc.metrics.ObserveTransition("unknown", resultMalformed)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Текущее состояние подписки
	current, err := uc.subscriptionRepo.GetByID(ctx, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Warn("TransitionSubscription: subscription id=%d not found", req.SubscriptionID)
			return nil, ErrSubscriptionNotFound
		}
		uc.logger.Error("TransitionSubscription: failed to get subscription id=%d: %v", req.SubscriptionID, err)
		return nil, fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
	}

	target, _ := op.Target()
	guarded := target.IsProtected() && !current.IsTerminal()

	// 3. Снимок носителя нужен проверкам доступности
	var asset domain.AssetSnapshot
	if guarded {
		snapshot, err := uc.assetResolver.Resolve(ctx, current.AssetID)
		if err != nil {
			if errors.Is(err, inventory.ErrAssetNotFound) {
				uc.logger.Warn("TransitionSubscription: asset id=%d not found", current.AssetID)
				return nil, ErrAssetNotFound
			}
			uc.logger.Error("TransitionSubscription: failed to resolve asset id=%d: %v", current.AssetID, err)
			return nil, fmt.Errorf("%w: failed to resolve asset: %v", ErrInternal, err)
		}
		asset = *snapshot

		// 4. Блокировка носителя на время "проверка -> запись"
		unlock, err := uc.locker.Lock(ctx, current.AssetID)
		if err != nil {
			if errors.Is(err, assetlock.ErrLocked) {
				uc.logger.Warn("TransitionSubscription: asset id=%d is locked", current.AssetID)
				uc.metrics.ObserveTransition(string(op), resultConflict)
				return nil, ErrConcurrentUpdate
			}
			uc.logger.Error("TransitionSubscription: failed to lock asset id=%d: %v", current.AssetID, err)
			return nil, fmt.Errorf("%w: failed to lock asset: %v", ErrInternal, err)
		}
		defer unlock()
	}

	// 5. Переход и запись в одной serializable транзакции
	var (
		updated *domain.Subscription
		notes   []lifecycle.Note
	)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		fresh, err := uc.subscriptionRepo.GetByID(txCtx, current.ID)
		if err != nil {
			return err
		}
		// снимок носителя и блокировка взяты по данным до транзакции
		if fresh.AssetID != current.AssetID || fresh.State != current.State ||
			!fresh.UpdatedAt.Equal(current.UpdatedAt) {
			return ErrConcurrentUpdate
		}

		var candidates []availability.Candidate
		if guarded {
			probe := fresh.Clone()
			probe.State = target
			candidates, err = uc.candidates.Candidates(txCtx, probe)
			if err != nil {
				return err
			}
		}

		next, produced, err := uc.machine.Apply(*fresh, op, lifecycle.TransitionContext{
			Actor:      req.ActorID,
			Asset:      asset,
			Candidates: candidates,
			Now:        uc.timeProvider.Now(),
		})
		if err != nil {
			return err
		}

		if err := uc.subscriptionRepo.Update(txCtx, &next); err != nil {
			return err
		}

		updated, err = uc.subscriptionRepo.GetByID(txCtx, current.ID)
		if err != nil {
			return err
		}
		notes = produced
		return nil
	})
	if err != nil {
		return nil, uc.mapError(op, current.ID, err)
	}

	uc.metrics.ObserveTransition(string(op), resultOK)
	uc.logger.Info("TransitionSubscription: subscription id=%d %s -> %s by operation %s",
		current.ID, current.State, updated.State, op)

	// 6. Заметки после коммита; ошибка доставки не отменяет переход
	bodies := uc.deliverNotes(ctx, notes)

	return &Response{Subscription: updated, Notes: bodies}, nil
}

// deliverNotes отправляет заметки в журнал и возвращает их тексты
func (uc *UseCase) deliverNotes(ctx context.Context, notes []lifecycle.Note) []string {
	if len(notes) == 0 {
		return nil
	}

	noteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), noteTimeout)
	defer cancel()

	bodies := make([]string, 0, len(notes))
	for _, n := range notes {
		bodies = append(bodies, n.Body)
		if err := uc.auditor.AppendNote(noteCtx, n); err != nil {
			uc.logger.Warn("TransitionSubscription: failed to deliver note for subscription id=%d: %v",
				n.SubscriptionID, err)
		}
	}
	return bodies
}

// mapError приводит ошибку транзакции к ошибкам use case
func (uc *UseCase) mapError(op lifecycle.Operation, subscriptionID int64, err error) error {
	switch {
	case domain.IsRuleViolation(err):
		if kind := domain.ViolationKind(err); kind != "" {
			uc.metrics.ObserveConflict(kind)
		}
		uc.metrics.ObserveTransition(string(op), resultRejected)
		uc.logger.Warn("TransitionSubscription: subscription id=%d rejected %s: %v", subscriptionID, op, err)
		return err
	case errors.Is(err, domain.ErrInvalidTransition):
		uc.metrics.ObserveTransition(string(op), resultRejected)
		uc.logger.Warn("TransitionSubscription: subscription id=%d: %v", subscriptionID, err)
		return err
	case errors.Is(err, ErrConcurrentUpdate), txmanager.IsSerializationFailure(err):
		uc.metrics.ObserveTransition(string(op), resultConflict)
		uc.logger.Warn("TransitionSubscription: concurrent update of subscription id=%d: %v", subscriptionID, err)
		return ErrConcurrentUpdate
	case errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound):
		uc.metrics.ObserveTransition(string(op), resultError)
		return ErrSubscriptionNotFound
	default:
		uc.metrics.ObserveTransition(string(op), resultError)
		uc.logger.Error("TransitionSubscription: failed to apply %s to subscription id=%d: %v", op, subscriptionID, err)
		return fmt.Errorf("%w: failed to apply operation: %v", ErrInternal, err)
	}
}
