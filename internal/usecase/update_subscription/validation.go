package update_subscription

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/payment"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SubscriptionID <= 0 {
		return fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}

	if req.AssetID != nil && *req.AssetID <= 0 {
		return fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}

	// 0 отвязывает подписку от договора
	if req.FrameworkContractID != nil && *req.FrameworkContractID < 0 {
		return fmt.Errorf("%w: frameworkContractID must not be negative", ErrInvalidInput)
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

// applyPatch применяет изменения к копии подписки и сообщает, что было затронуто
func applyPatch(sub *domain.Subscription, req *Request) (changes, error) {
	var ch changes

	if req.FrameworkContractID != nil {
		var next *int64
		if *req.FrameworkContractID > 0 {
			id := *req.FrameworkContractID
			next = &id
		}
		ch.contract = !sameID(sub.FrameworkContractID, next)
		sub.FrameworkContractID = next
	}

	if req.AccountExecutiveID != nil {
		id := *req.AccountExecutiveID
		sub.AccountExecutiveID = &id
	}

	if req.AssetID != nil && *req.AssetID != sub.AssetID {
		sub.AssetID = *req.AssetID
		ch.asset = true
		ch.pricing = true
	}

	if req.ContentType != nil {
		v, err := domain.ParseContentType(*req.ContentType)
		if err != nil {
			return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		ch.pricing = ch.pricing || v != sub.ContentType
		sub.ContentType = v
	}

	if req.Site != nil {
		v, err := domain.ParseSite(*req.Site)
		if err != nil {
			return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		ch.pricing = ch.pricing || v != sub.Site
		sub.Site = v
	}

	if req.Zone != nil {
		v, err := domain.ParseZone(*req.Zone)
		if err != nil {
			return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		ch.pricing = ch.pricing || v != sub.Zone
		sub.Zone = v
	}

	if req.ZoneSurchargeOverride != nil {
		sub.ZoneSurchargeOverride = decimal.NewNullDecimal(*req.ZoneSurchargeOverride)
		ch.pricing = true
	}
	if req.ContentSurchargeOverride != nil {
		sub.ContentSurchargeOverride = decimal.NewNullDecimal(*req.ContentSurchargeOverride)
		ch.pricing = true
	}

	if req.Duration != nil {
		v, err := domain.ParseDuration(*req.Duration)
		if err != nil {
			return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if v != sub.Duration {
			sub.Duration = v
			ch.period = true
			ch.plan = true
		}
	}

	if req.StartDate != nil {
		start := domain.DateOnly(*req.StartDate)
		if sub.StartDate == nil || !sub.StartDate.Equal(start) {
			sub.StartDate = &start
			ch.period = true
		}
	}

	if req.PaymentMethod != nil {
		v, err := domain.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.PaymentMethod = v
	}

	if req.InstallmentCount != nil {
		sub.InstallmentCount = *req.InstallmentCount
		ch.plan = true
	}
	if req.AdvancePercentage != nil {
		sub.AdvancePercentage = *req.AdvancePercentage
		ch.plan = true
	}
	if err := payment.Validate(sub.AdvancePercentage, sub.InstallmentCount); err != nil {
		return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.AdvanceReceived != nil {
		sub.AdvanceReceived = *req.AdvanceReceived
	}

	if req.ArtworkState != nil {
		v, err := domain.ParseArtworkState(*req.ArtworkState)
		if err != nil {
			return ch, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sub.ArtworkState = v
	}

	if ch.period {
		sub.RecomputeEndDate()
	}
	if ch.pricing {
		ch.plan = true
	}

	return ch, nil
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
