package transition_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/api/middleware"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	transitionSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/transition_subscription"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgUnknownOperation      = "неизвестная операция"
	msgNotFound              = "подписка не найдена"
	msgAssetNotFound         = "рекламный носитель не найден"
)

type Handler struct {
	useCase   TransitionSubscriptionUseCase
	precision domain.CurrencyPrecision
	logger    Logger
}

func NewHandler(useCase TransitionSubscriptionUseCase, precision domain.CurrencyPrecision, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		precision: precision,
		logger:    logger,
	}
}

// Handle POST /api/v1/subscriptions/{subscriptionId}/transitions/{operation}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil || subscriptionID <= 0 {
		h.logger.Warn("POST /subscriptions/{id}/transitions - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscriptions/{id}/transitions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	operation := vars["operation"]
	result, err := h.useCase.Execute(r.Context(), &transitionSubscription.Request{
		ActorID:        userID,
		SubscriptionID: subscriptionID,
		Operation:      operation,
	})
	if err != nil {
		switch {
		case domain.IsRuleViolation(err), errors.Is(err, transitionSubscription.ErrInvalidTransition):
			h.logger.Warn("POST /subscriptions/{id}/transitions - Rejected: subscription_id=%d, operation=%s, error=%v",
				subscriptionID, operation, err)
			handlers.RespondRuleViolation(w, err)

		case errors.Is(err, transitionSubscription.ErrConcurrentUpdate):
			h.logger.Warn("POST /subscriptions/{id}/transitions - Concurrent update: subscription_id=%d", subscriptionID)
			handlers.RespondConcurrentUpdate(w)

		case errors.Is(err, transitionSubscription.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgUnknownOperation)

		case errors.Is(err, transitionSubscription.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionSubscription.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		default:
			h.logger.Error("POST /subscriptions/{id}/transitions - Failed: subscription_id=%d, operation=%s, error=%v",
				subscriptionID, operation, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscriptions/{id}/transitions - Operation applied: subscription_id=%d, operation=%s, state=%s",
		subscriptionID, operation, result.Subscription.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.precision))
}
