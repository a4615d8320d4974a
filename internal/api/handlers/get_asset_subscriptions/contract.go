package get_asset_subscriptions

import (
	"context"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	ListByAsset(ctx context.Context, req *models.ListByAssetRequest) ([]*domain.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
