package transition_subscription

import (
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
	transitionSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/transition_subscription"
)

// TransitionResponse HTTP response model
type TransitionResponse struct {
	Subscription *models.SubscriptionResponse `json:"subscription"`
	Notes        []string                     `json:"notes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionSubscription.Response, precision domain.CurrencyPrecision) *TransitionResponse {
	notes := resp.Notes
	if notes == nil {
		notes = []string{}
	}
	return &TransitionResponse{
		Subscription: models.FromDomainSubscription(resp.Subscription, precision),
		Notes:        notes,
	}
}
