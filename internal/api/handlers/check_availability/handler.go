package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/api/middleware"
	checkAvailability "github.com/m04kA/SMC-AdPlacementService/internal/usecase/check_availability"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgNotFound              = "подписка не найдена"
	msgAssetNotFound         = "рекламный носитель не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/subscriptions/{subscriptionId}/availability
// Пробная проверка, подписка не меняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := strconv.ParseInt(mux.Vars(r)["subscriptionId"], 10, 64)
	if err != nil || subscriptionID <= 0 {
		h.logger.Warn("GET /subscriptions/{id}/availability - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		ActorID:        userID,
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkAvailability.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		default:
			h.logger.Error("GET /subscriptions/{id}/availability - Failed: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /subscriptions/{id}/availability - subscription_id=%d, available=%t",
		subscriptionID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
