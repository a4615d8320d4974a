package check_availability

import (
	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-AdPlacementService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SubscriptionID int64                   `json:"subscriptionId"`
	AssetID        int64                   `json:"assetId"`
	State          string                  `json:"state"`
	Available      bool                    `json:"available"`
	Reason         string                  `json:"reason,omitempty"`
	Code           string                  `json:"code,omitempty"`
	Conflict       *handlers.ConflictBody  `json:"conflict,omitempty"`
	Details        *handlers.ViolationBody `json:"details,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		SubscriptionID: resp.SubscriptionID,
		AssetID:        resp.AssetID,
		State:          string(resp.State),
		Available:      resp.Available,
	}

	v := resp.Violation
	if v == nil {
		return out
	}

	out.Reason = v.Error()
	out.Code = domain.ViolationKind(v)
	out.Details = &handlers.ViolationBody{
		AssetID:   v.AssetID,
		AssetName: v.AssetName,
		Required:  v.Required,
		Actual:    v.Actual,
	}
	if v.Conflict != nil {
		out.Conflict = &handlers.ConflictBody{
			SubscriptionID: v.Conflict.SubscriptionID,
			Reference:      v.Conflict.Reference,
			ContractName:   v.Conflict.ContractName,
			StartDate:      v.Conflict.StartDate.Format(domain.DateFormat),
			EndDate:        v.Conflict.EndDate.Format(domain.DateFormat),
		}
	}
	return out
}
