package transition_subscription

import (
	"context"

	transitionSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/transition_subscription"
)

type TransitionSubscriptionUseCase interface {
	Execute(ctx context.Context, req *transitionSubscription.Request) (*transitionSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
