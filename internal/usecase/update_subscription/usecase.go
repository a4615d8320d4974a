package update_subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	contractRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/contract"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/inventory"
	"github.com/m04kA/SMC-AdPlacementService/internal/payment"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
	"github.com/m04kA/SMC-AdPlacementService/pkg/assetlock"
	"github.com/m04kA/SMC-AdPlacementService/pkg/txmanager"
)

// UseCase use case для изменения подписки
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	contractRepo     ContractRepository
	assetResolver    AssetResolver
	candidates       CandidateLoader
	guard            AvailabilityGuard
	pricing          PricingEngine
	locker           AssetLocker
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	contractRepo ContractRepository,
	assetResolver AssetResolver,
	candidates CandidateLoader,
	guard AvailabilityGuard,
	pricing PricingEngine,
	locker AssetLocker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		contractRepo:     contractRepo,
		assetResolver:    assetResolver,
		candidates:       candidates,
		guard:            guard,
		pricing:          pricing,
		locker:           locker,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case изменения подписки
// Если подписка держит носитель и меняется носитель или период, доступность проверяется
// заново под блокировкой носителей в serializable транзакции. При отказе ничего не пишется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSubscription: actor=%d, subscription=%d", req.ActorID, req.SubscriptionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSubscription: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее состояние подписки
	current, err := uc.subscriptionRepo.GetByID(ctx, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Warn("UpdateSubscription: subscription id=%d not found", req.SubscriptionID)
			return nil, ErrSubscriptionNotFound
		}
		uc.logger.Error("UpdateSubscription: failed to get subscription id=%d: %v", req.SubscriptionID, err)
		return nil, fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
	}

	if current.IsTerminal() {
		uc.logger.Warn("UpdateSubscription: subscription id=%d is %s", current.ID, current.State)
		return nil, &domain.RuleViolation{
			Kind:     ErrTerminalState,
			AssetID:  current.AssetID,
			Required: "a non-terminal state",
			Actual:   current.State.Label(),
		}
	}

	// 3. Применяем изменения к копии
	next := current.Clone()
	ch, err := applyPatch(&next, req)
	if err != nil {
		uc.logger.Warn("UpdateSubscription: invalid patch for subscription id=%d: %v", current.ID, err)
		return nil, err
	}

	// 4. Новый договор должен принадлежать клиенту подписки
	if ch.contract && next.FrameworkContractID != nil {
		if err := uc.checkContract(ctx, *next.FrameworkContractID, next.CustomerID); err != nil {
			return nil, err
		}
	}

	// 5. Пересчёт производных полей
	revalidate := next.IsProtected() && (ch.asset || ch.period)

	var asset *domain.AssetSnapshot
	if ch.needsAsset() || revalidate {
		asset, err = uc.assetResolver.Resolve(ctx, next.AssetID)
		if err != nil {
			if errors.Is(err, inventory.ErrAssetNotFound) {
				uc.logger.Warn("UpdateSubscription: asset id=%d not found", next.AssetID)
				return nil, ErrAssetNotFound
			}
			uc.logger.Error("UpdateSubscription: failed to resolve asset id=%d: %v", next.AssetID, err)
			return nil, fmt.Errorf("%w: failed to resolve asset: %v", ErrInternal, err)
		}
	}

	if ch.asset {
		next.AssetFormat, next.AssetSize = pricing.ResolveTechnicalSpecs(*asset)
	}
	if ch.pricing {
		next.MonthlyPrice = uc.pricing.ComputeMonthlyPrice(next.Selections(), *asset)
	}
	if ch.plan {
		next.ApplyPlan(payment.PlanFor(next, next.MonthlyPrice))
	}

	// 6. Блокируем старый и новый носитель на время "проверка -> запись"
	if revalidate {
		unlock, err := uc.locker.Lock(ctx, current.AssetID, next.AssetID)
		if err != nil {
			if errors.Is(err, assetlock.ErrLocked) {
				uc.logger.Warn("UpdateSubscription: asset of subscription id=%d is locked", current.ID)
				return nil, ErrConcurrentUpdate
			}
			uc.logger.Error("UpdateSubscription: failed to lock assets: %v", err)
			return nil, fmt.Errorf("%w: failed to lock assets: %v", ErrInternal, err)
		}
		defer unlock()
	}

	// 7. Проверка и запись в одной serializable транзакции
	var updated *domain.Subscription
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		fresh, err := uc.subscriptionRepo.GetByID(txCtx, current.ID)
		if err != nil {
			return err
		}
		if fresh.AssetID != current.AssetID || fresh.State != current.State ||
			!fresh.UpdatedAt.Equal(current.UpdatedAt) {
			return ErrConcurrentUpdate
		}

		if revalidate {
			candidates, err := uc.candidates.Candidates(txCtx, next)
			if err != nil {
				return err
			}
			if err := uc.guard.Revalidate(next, *asset, candidates); err != nil {
				return err
			}
		}

		if err := uc.subscriptionRepo.Update(txCtx, &next); err != nil {
			return err
		}

		updated, err = uc.subscriptionRepo.GetByID(txCtx, current.ID)
		return err
	})
	if err != nil {
		return nil, uc.mapError(current.ID, err)
	}

	uc.logger.Info("UpdateSubscription: successfully updated subscription id=%d, monthly_price=%s, revalidated=%t",
		updated.ID, updated.MonthlyPrice.String(), revalidate)

	return &Response{Subscription: updated}, nil
}

// checkContract проверяет существование договора и его принадлежность клиенту
func (uc *UseCase) checkContract(ctx context.Context, contractID, customerID int64) error {
	c, err := uc.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			uc.logger.Warn("UpdateSubscription: contract id=%d not found", contractID)
			return ErrContractNotFound
		}
		uc.logger.Error("UpdateSubscription: failed to get contract id=%d: %v", contractID, err)
		return fmt.Errorf("%w: failed to get contract: %v", ErrInternal, err)
	}
	if c.CustomerID != customerID {
		uc.logger.Warn("UpdateSubscription: contract id=%d belongs to customer=%d, not %d",
			c.ID, c.CustomerID, customerID)
		return ErrContractCustomerMismatch
	}
	return nil
}

// mapError приводит ошибку транзакции к ошибкам use case
func (uc *UseCase) mapError(subscriptionID int64, err error) error {
	switch {
	case domain.IsRuleViolation(err):
		uc.metrics.ObserveConflict(domain.ViolationKind(err))
		uc.logger.Warn("UpdateSubscription: subscription id=%d rejected: %v", subscriptionID, err)
		return err
	case errors.Is(err, ErrConcurrentUpdate), txmanager.IsSerializationFailure(err):
		uc.logger.Warn("UpdateSubscription: concurrent update of subscription id=%d: %v", subscriptionID, err)
		return ErrConcurrentUpdate
	case errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound):
		uc.logger.Warn("UpdateSubscription: subscription id=%d disappeared", subscriptionID)
		return ErrSubscriptionNotFound
	default:
		uc.logger.Error("UpdateSubscription: failed to update subscription id=%d: %v", subscriptionID, err)
		return fmt.Errorf("%w: failed to update subscription: %v", ErrInternal, err)
	}
}
