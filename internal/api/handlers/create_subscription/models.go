package create_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	createSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/create_subscription"
)

// CreateSubscriptionRequest HTTP request model
type CreateSubscriptionRequest struct {
	CustomerID          int64  `json:"customerId"`
	FrameworkContractID *int64 `json:"frameworkContractId,omitempty"`
	AccountExecutiveID  *int64 `json:"accountExecutiveId,omitempty"`
	AssetID             int64  `json:"assetId"`

	ContentType   *string `json:"contentType,omitempty"`   // static | video
	Site          *string `json:"site,omitempty"`          // viva | buenavista | mallplaza | unico | plaza_central
	Zone          *string `json:"zone,omitempty"`          // facade | entrance | corridor | food_court
	Duration      *string `json:"duration,omitempty"`      // "3" | "6" | "12" | "24"
	PaymentMethod *string `json:"paymentMethod,omitempty"` // cash | advance_balance | installments

	InstallmentCount         *int             `json:"installmentCount,omitempty"`
	AdvancePercentage        *decimal.Decimal `json:"advancePercentage,omitempty"`
	ZoneSurchargeOverride    *decimal.Decimal `json:"zoneSurchargeOverride,omitempty"`
	ContentSurchargeOverride *decimal.Decimal `json:"contentSurchargeOverride,omitempty"`

	StartDate *string `json:"startDate,omitempty"` // "2024-06-01", по умолчанию сегодня
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSubscriptionRequest) ToUseCaseRequest(actorID int64) (*createSubscription.Request, error) {
	var start *time.Time
	if r.StartDate != nil {
		t, err := handlers.ParseDate(*r.StartDate)
		if err != nil {
			return nil, err
		}
		start = &t
	}

	return &createSubscription.Request{
		ActorID:                  actorID,
		CustomerID:               r.CustomerID,
		FrameworkContractID:      r.FrameworkContractID,
		AccountExecutiveID:       r.AccountExecutiveID,
		AssetID:                  r.AssetID,
		ContentType:              r.ContentType,
		Site:                     r.Site,
		Zone:                     r.Zone,
		Duration:                 r.Duration,
		PaymentMethod:            r.PaymentMethod,
		InstallmentCount:         r.InstallmentCount,
		AdvancePercentage:        r.AdvancePercentage,
		ZoneSurchargeOverride:    r.ZoneSurchargeOverride,
		ContentSurchargeOverride: r.ContentSurchargeOverride,
		StartDate:                start,
	}, nil
}
