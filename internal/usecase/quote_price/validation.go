package quote_price

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/payment"
)

// terms условия оплаты запроса
type terms struct {
	duration     string
	advance      decimal.Decimal
	installments int
}

// validateRequest валидирует запрос и возвращает выборы и условия оплаты
func validateRequest(req *Request) (domain.Selections, terms, error) {
	sel := domain.Selections{ContentType: domain.ContentStatic}
	t := terms{advance: decimal.Zero, installments: domain.DefaultInstallmentCount}

	if req.AssetID <= 0 {
		return sel, t, fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}

	if req.ContentType != nil {
		v, err := domain.ParseContentType(*req.ContentType)
		if err != nil {
			return sel, t, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sel.ContentType = v
	}
	if req.Site != nil {
		v, err := domain.ParseSite(*req.Site)
		if err != nil {
			return sel, t, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sel.Site = v
	}
	if req.Zone != nil {
		v, err := domain.ParseZone(*req.Zone)
		if err != nil {
			return sel, t, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sel.Zone = v
	}

	for _, o := range []struct {
		name  string
		value *decimal.Decimal
		dst   *decimal.NullDecimal
	}{
		{"zoneSurchargeOverride", req.ZoneSurchargeOverride, &sel.ZoneSurchargeOverride},
		{"contentSurchargeOverride", req.ContentSurchargeOverride, &sel.ContentSurchargeOverride},
	} {
		if o.value == nil {
			continue
		}
		if o.value.IsNegative() {
			return sel, t, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, o.name)
		}
		*o.dst = decimal.NewNullDecimal(*o.value)
	}

	if req.Duration != nil {
		t.duration = *req.Duration
	}
	if req.AdvancePercentage != nil {
		t.advance = *req.AdvancePercentage
	}
	if req.InstallmentCount != nil {
		t.installments = *req.InstallmentCount
	}
	if err := payment.Validate(t.advance, t.installments); err != nil {
		return sel, t, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return sel, t, nil
}
