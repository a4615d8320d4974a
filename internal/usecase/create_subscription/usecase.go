package create_subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	contractRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/contract"
	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/inventory"
	partnerClient "github.com/m04kA/SMC-AdPlacementService/internal/integrations/partnerservice"
	"github.com/m04kA/SMC-AdPlacementService/internal/payment"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
)

// UseCase use case для создания подписки в состоянии draft
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	contractRepo     ContractRepository
	assetResolver    AssetResolver
	partnerClient    PartnerServiceClient
	pricing          PricingEngine
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	contractRepo ContractRepository,
	assetResolver AssetResolver,
	partnerClient PartnerServiceClient,
	pricing PricingEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		contractRepo:     contractRepo,
		assetResolver:    assetResolver,
		partnerClient:    partnerClient,
		pricing:          pricing,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания подписки
// Подписка в draft не держит носитель, поэтому проверка доступности не выполняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSubscription: actor=%d, customer=%d, asset=%d", req.ActorID, req.CustomerID, req.AssetID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSubscription: validation failed: %v", err)
		return nil, err
	}

	sub := domain.NewDraft()
	sub.CustomerID = req.CustomerID
	sub.AssetID = req.AssetID
	if err := applySelections(&sub, req); err != nil {
		uc.logger.Warn("CreateSubscription: invalid selections: %v", err)
		return nil, err
	}

	// 2. Рамочный договор должен принадлежать тому же клиенту
	var contract *domain.FrameworkContract
	if req.FrameworkContractID != nil {
		c, err := uc.contractRepo.GetByID(ctx, *req.FrameworkContractID)
		if err != nil {
			if errors.Is(err, contractRepo.ErrContractNotFound) {
				uc.logger.Warn("CreateSubscription: contract id=%d not found", *req.FrameworkContractID)
				return nil, ErrContractNotFound
			}
			uc.logger.Error("CreateSubscription: failed to get contract id=%d: %v", *req.FrameworkContractID, err)
			return nil, fmt.Errorf("%w: failed to get contract: %v", ErrInternal, err)
		}
		if c.CustomerID != req.CustomerID {
			uc.logger.Warn("CreateSubscription: contract id=%d belongs to customer=%d, not %d",
				c.ID, c.CustomerID, req.CustomerID)
			return nil, ErrContractCustomerMismatch
		}
		contract = c
		sub.FrameworkContractID = &c.ID
	}

	// 3. Менеджер: явно указанный, из договора или текущий пользователь
	sub.AccountExecutiveID = accountExecutive(req, contract)

	// 4. Снимок носителя из каталога
	asset, err := uc.assetResolver.Resolve(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, inventory.ErrAssetNotFound) {
			uc.logger.Warn("CreateSubscription: asset id=%d not found", req.AssetID)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("CreateSubscription: failed to resolve asset id=%d: %v", req.AssetID, err)
		return nil, fmt.Errorf("%w: failed to resolve asset: %v", ErrInternal, err)
	}

	// 5. Имя клиента для референса; при деградации используем имя по умолчанию
	customerName := ""
	customer, err := uc.partnerClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	switch {
	case err == nil:
		customerName = customer.Name
	case errors.Is(err, partnerClient.ErrCustomerNotFound):
		uc.logger.Warn("CreateSubscription: customer id=%d not found", req.CustomerID)
		return nil, ErrCustomerNotFound
	case errors.Is(err, partnerClient.ErrServiceDegraded):
		uc.logger.Warn("CreateSubscription: using default customer name for customer=%d", req.CustomerID)
	default:
		uc.logger.Error("CreateSubscription: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 6. Производные поля
	if sub.Site == "" {
		if site, ok := pricing.InferSite(*asset); ok {
			sub.Site = site
			uc.logger.Info("CreateSubscription: site %s inferred from asset id=%d", site, asset.AssetID)
		}
	}
	sub.AssetFormat, sub.AssetSize = pricing.ResolveTechnicalSpecs(*asset)

	start := domain.DateOnly(uc.timeProvider.Now())
	if req.StartDate != nil {
		start = domain.DateOnly(*req.StartDate)
	}
	sub.StartDate = &start
	sub.RecomputeEndDate()

	sub.MonthlyPrice = uc.pricing.ComputeMonthlyPrice(sub.Selections(), *asset)
	sub.ApplyPlan(payment.PlanFor(sub, sub.MonthlyPrice))
	sub.Reference = domain.ReferenceName(customerName, asset.Name, sub.Zone)

	// 7. Сохраняем
	created, err := uc.subscriptionRepo.Create(ctx, &sub)
	if err != nil {
		uc.logger.Error("CreateSubscription: failed to create subscription: %v", err)
		return nil, fmt.Errorf("%w: failed to create subscription: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSubscription: successfully created subscription id=%d, reference=%q, monthly_price=%s",
		created.ID, created.Reference, created.MonthlyPrice.String())

	return &Response{Subscription: created}, nil
}

// accountExecutive выбирает менеджера подписки
func accountExecutive(req *Request, contract *domain.FrameworkContract) *int64 {
	switch {
	case req.AccountExecutiveID != nil:
		id := *req.AccountExecutiveID
		return &id
	case contract != nil && contract.AccountExecutiveID != nil:
		id := *contract.AccountExecutiveID
		return &id
	case req.ActorID > 0:
		id := req.ActorID
		return &id
	default:
		return nil
	}
}
