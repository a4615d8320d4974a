package check_availability

import (
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Request модель запроса на пробную проверку доступности
type Request struct {
	ActorID        int64
	SubscriptionID int64
}

// Response результат проверки; подписка не меняется
type Response struct {
	SubscriptionID int64
	AssetID        int64
	State          domain.SubscriptionState
	Available      bool
	Violation      *domain.RuleViolation // nil, если носитель свободен
}
