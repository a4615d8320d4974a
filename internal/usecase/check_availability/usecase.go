package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/inventory"
)

// UseCase use case пробной проверки доступности носителя для подписки
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	assetResolver    AssetResolver
	candidates       CandidateLoader
	checker          AvailabilityChecker
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	assetResolver AssetResolver,
	candidates CandidateLoader,
	checker AvailabilityChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		assetResolver:    assetResolver,
		candidates:       candidates,
		checker:          checker,
		logger:           logger,
	}
}

// Execute проверяет, может ли подписка держать носитель сейчас
// Подписка вне защищённых состояний проверяется так, будто её подтверждают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: actor=%d, subscription=%d", req.ActorID, req.SubscriptionID)

	if req.SubscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}

	// 1. Подписка
	sub, err := uc.subscriptionRepo.GetByID(ctx, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Warn("CheckAvailability: subscription id=%d not found", req.SubscriptionID)
			return nil, ErrSubscriptionNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get subscription id=%d: %v", req.SubscriptionID, err)
		return nil, fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
	}

	resp := &Response{SubscriptionID: sub.ID, AssetID: sub.AssetID, State: sub.State}

	if sub.IsTerminal() {
		resp.Violation = &domain.RuleViolation{
			Kind:     domain.ErrTerminalState,
			AssetID:  sub.AssetID,
			Required: "a non-terminal state",
			Actual:   sub.State.Label(),
		}
		return resp, nil
	}

	// 2. Носитель и конкуренты
	asset, err := uc.assetResolver.Resolve(ctx, sub.AssetID)
	if err != nil {
		if errors.Is(err, inventory.ErrAssetNotFound) {
			uc.logger.Warn("CheckAvailability: asset id=%d not found", sub.AssetID)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("CheckAvailability: failed to resolve asset id=%d: %v", sub.AssetID, err)
		return nil, fmt.Errorf("%w: failed to resolve asset: %v", ErrInternal, err)
	}

	probe := sub.Clone()
	if !probe.IsProtected() {
		probe.State = domain.StateConfirmed
	}

	candidates, err := uc.candidates.Candidates(ctx, probe)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load candidates for subscription id=%d: %v", sub.ID, err)
		return nil, fmt.Errorf("%w: failed to load candidates: %v", ErrInternal, err)
	}

	// 3. Проверка
	err = uc.checker.Check(probe, *asset, candidates)
	var violation *domain.RuleViolation
	switch {
	case err == nil:
		resp.Available = true
	case errors.As(err, &violation):
		resp.Violation = violation
	default:
		uc.logger.Error("CheckAvailability: check failed for subscription id=%d: %v", sub.ID, err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: subscription id=%d, asset=%d, available=%t", sub.ID, sub.AssetID, resp.Available)

	return resp, nil
}
