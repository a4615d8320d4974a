package create_subscription

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/payment"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.AssetID <= 0 {
		return fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}

	if req.FrameworkContractID != nil && *req.FrameworkContractID <= 0 {
		return fmt.Errorf("%w: frameworkContractID must be positive", ErrInvalidInput)
	}

	advance := decimal.Zero
	if req.AdvancePercentage != nil {
		advance = *req.AdvancePercentage
	}
	installments := domain.DefaultInstallmentCount
	if req.InstallmentCount != nil {
		installments = *req.InstallmentCount
	}
	if err := payment.Validate(advance, installments); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for name, v := range map[string]*decimal.Decimal{
		"zoneSurchargeOverride":    req.ZoneSurchargeOverride,
		"contentSurchargeOverride": req.ContentSurchargeOverride,
	} {
		if v != nil && v.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}

	return nil
}

// applySelections переносит выборы из запроса в черновик
func applySelections(sub *domain.Subscription, req *Request) error {
	if req.ContentType != nil {
		v, err := domain.ParseContentType(*req.ContentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.ContentType = v
	}

	if req.Site != nil {
		v, err := domain.ParseSite(*req.Site)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.Site = v
	}

	if req.Zone != nil {
		v, err := domain.ParseZone(*req.Zone)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.Zone = v
	}

	if req.Duration != nil {
		v, err := domain.ParseDuration(*req.Duration)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.Duration = v
	}

	if req.PaymentMethod != nil {
		v, err := domain.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.PaymentMethod = v
	}

	if req.InstallmentCount != nil {
		sub.InstallmentCount = *req.InstallmentCount
	}
	if req.AdvancePercentage != nil {
		sub.AdvancePercentage = *req.AdvancePercentage
	}
	if req.ZoneSurchargeOverride != nil {
		sub.ZoneSurchargeOverride = decimal.NewNullDecimal(*req.ZoneSurchargeOverride)
	}
	if req.ContentSurchargeOverride != nil {
		sub.ContentSurchargeOverride = decimal.NewNullDecimal(*req.ContentSurchargeOverride)
	}

	return nil
}
