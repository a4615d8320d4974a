package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
)

// Service сервис чтения подписок
type Service struct {
	subscriptionRepo SubscriptionRepository
	contractRepo     ContractRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(
	subscriptionRepo SubscriptionRepository,
	contractRepo ContractRepository,
	logger Logger,
) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		contractRepo:     contractRepo,
		logger:           logger,
	}
}

// GetByID получает подписку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	s.logger.Info("GetByID: fetching subscription id=%d", id)

	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("GetByID: subscription id=%d not found", id)
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("GetByID: repository error for subscription id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return sub, nil
}

// ListByAsset получает подписки носителя, опционально по состояниям и периоду
func (s *Service) ListByAsset(ctx context.Context, req *models.ListByAssetRequest) ([]*domain.Subscription, error) {
	s.logger.Info("ListByAsset: fetching subscriptions for asset=%d, states=%v", req.AssetID, req.States)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByAsset: invalid filter for asset=%d: %v", req.AssetID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	subs, err := s.subscriptionRepo.GetByAssetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByAsset: repository error for asset=%d: %v", req.AssetID, err)
		return nil, fmt.Errorf("%w: ListByAsset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByAsset: fetched %d subscriptions for asset=%d", len(subs), req.AssetID)
	return subs, nil
}

// ListByCustomer получает подписки клиента, опционально по состоянию
func (s *Service) ListByCustomer(ctx context.Context, req *models.ListByCustomerRequest) ([]*domain.Subscription, error) {
	s.logger.Info("ListByCustomer: fetching subscriptions for customer=%d, state=%v", req.CustomerID, req.State)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByCustomer: invalid filter for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	subs, err := s.subscriptionRepo.ListByCustomer(ctx, filter)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: fetched %d subscriptions for customer=%d", len(subs), req.CustomerID)
	return subs, nil
}

// Candidates загружает подписки того же носителя в защищённых состояниях,
// пересекающиеся с периодом sub, с именами рамочных договоров.
// Внутри транзакции строки блокируются репозиторием (FOR UPDATE).
func (s *Service) Candidates(ctx context.Context, sub domain.Subscription) ([]availability.Candidate, error) {
	if !sub.HasPeriod() || sub.AssetID == 0 {
		return nil, nil
	}

	subs, err := s.subscriptionRepo.GetByAssetWithFilter(ctx, domain.AssetSubscriptionsFilter{
		AssetID:   sub.AssetID,
		States:    domain.ProtectedStates,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		ExcludeID: sub.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Candidates - repository error: %w", ErrInternal, err)
	}
	if len(subs) == 0 {
		return nil, nil
	}

	contracts, err := s.contractRepo.GetByIDs(ctx, contractIDs(subs))
	if err != nil {
		return nil, fmt.Errorf("%w: Candidates - contract repository error: %w", ErrInternal, err)
	}

	candidates := make([]availability.Candidate, 0, len(subs))
	for _, c := range subs {
		candidate := availability.Candidate{Subscription: *c}
		if c.FrameworkContractID != nil {
			if contract, ok := contracts[*c.FrameworkContractID]; ok {
				candidate.ContractName = contract.Name
			}
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// contractIDs возвращает уникальные ID рамочных договоров подписок
func contractIDs(subs []*domain.Subscription) []int64 {
	seen := make(map[int64]struct{}, len(subs))
	ids := make([]int64, 0, len(subs))
	for _, s := range subs {
		if s.FrameworkContractID == nil {
			continue
		}
		if _, ok := seen[*s.FrameworkContractID]; ok {
			continue
		}
		seen[*s.FrameworkContractID] = struct{}{}
		ids = append(ids, *s.FrameworkContractID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
