package get_customer_subscriptions

import (
	"context"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	ListByCustomer(ctx context.Context, req *models.ListByCustomerRequest) ([]*domain.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
