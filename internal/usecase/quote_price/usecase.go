package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/inventory"
	"github.com/m04kA/SMC-AdPlacementService/internal/payment"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
)

// UseCase use case для расчёта цены и плана оплаты без сохранения
type UseCase struct {
	assetResolver AssetResolver
	pricing       PricingEngine
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(assetResolver AssetResolver, pricing PricingEngine, logger Logger) *UseCase {
	return &UseCase{
		assetResolver: assetResolver,
		pricing:       pricing,
		logger:        logger,
	}
}

// Execute выполняет use case расчёта цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: asset=%d", req.AssetID)

	// 1. Валидация входных данных
	sel, t, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок носителя
	asset, err := uc.assetResolver.Resolve(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, inventory.ErrAssetNotFound) {
			uc.logger.Warn("QuotePrice: asset id=%d not found", req.AssetID)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("QuotePrice: failed to resolve asset id=%d: %v", req.AssetID, err)
		return nil, fmt.Errorf("%w: failed to resolve asset: %v", ErrInternal, err)
	}

	// 3. Площадка по атрибутам, если не выбрана
	inferred := false
	if sel.Site == "" {
		sel.Site, inferred = pricing.InferSite(*asset)
	}

	// 4. Цена и план
	breakdown := uc.pricing.Compute(sel, *asset)
	plan := payment.ComputePlan(breakdown.MonthlyPrice, t.duration, t.advance, t.installments)
	format, size := pricing.ResolveTechnicalSpecs(*asset)

	uc.logger.Info("QuotePrice: asset=%d, monthly_price=%s, total=%s",
		asset.AssetID, breakdown.MonthlyPrice.String(), plan.TotalValue.String())

	return &Response{
		AssetID:      asset.AssetID,
		AssetName:    asset.Name,
		Site:         sel.Site,
		SiteInferred: inferred,
		AssetFormat:  format,
		AssetSize:    size,
		Months:       payment.ParseMonths(t.duration),
		Breakdown:    breakdown,
		Plan:         plan,
	}, nil
}
