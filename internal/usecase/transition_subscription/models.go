package transition_subscription

import (
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Request модель запроса на операцию жизненного цикла
type Request struct {
	ActorID        int64
	SubscriptionID int64
	Operation      string
}

// Response модель ответа
type Response struct {
	Subscription *domain.Subscription
	Notes        []string
}

// Результаты операции для метрик
const (
	resultOK        = "ok"
	resultRejected  = "rejected"
	resultConflict  = "conflict"
	resultError     = "error"
	resultMalformed = "invalid"
)
