package update_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	updateSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/update_subscription"
)

// UpdateSubscriptionRequest HTTP request model (частичное обновление)
// Отсутствующие поля не меняются, frameworkContractId = 0 отвязывает договор
type UpdateSubscriptionRequest struct {
	FrameworkContractID *int64 `json:"frameworkContractId,omitempty"`
	AccountExecutiveID  *int64 `json:"accountExecutiveId,omitempty"`
	AssetID             *int64 `json:"assetId,omitempty"`

	ContentType   *string `json:"contentType,omitempty"`
	Site          *string `json:"site,omitempty"`
	Zone          *string `json:"zone,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`

	InstallmentCount         *int             `json:"installmentCount,omitempty"`
	AdvancePercentage        *decimal.Decimal `json:"advancePercentage,omitempty"`
	ZoneSurchargeOverride    *decimal.Decimal `json:"zoneSurchargeOverride,omitempty"`
	ContentSurchargeOverride *decimal.Decimal `json:"contentSurchargeOverride,omitempty"`

	AdvanceReceived *bool   `json:"advanceReceived,omitempty"`
	ArtworkState    *string `json:"artworkState,omitempty"`
	StartDate       *string `json:"startDate,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSubscriptionRequest) ToUseCaseRequest(subscriptionID, actorID int64) (*updateSubscription.Request, error) {
	var start *time.Time
	if r.StartDate != nil {
		t, err := handlers.ParseDate(*r.StartDate)
		if err != nil {
			return nil, err
		}
		start = &t
	}

	return &updateSubscription.Request{
		ActorID:                  actorID,
		SubscriptionID:           subscriptionID,
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
		AdvanceReceived:          r.AdvanceReceived,
		ArtworkState:             r.ArtworkState,
		StartDate:                start,
	}, nil
}
