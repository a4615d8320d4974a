package get_subscription

import (
	"context"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

type SubscriptionService interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
