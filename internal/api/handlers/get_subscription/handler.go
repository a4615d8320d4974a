package get_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgNotFound              = "подписка не найдена"
)

type Handler struct {
	service   SubscriptionService
	precision domain.CurrencyPrecision
	logger    Logger
}

func NewHandler(service SubscriptionService, precision domain.CurrencyPrecision, logger Logger) *Handler {
	return &Handler{
		service:   service,
		precision: precision,
		logger:    logger,
	}
}

// Handle GET /api/v1/subscriptions/{subscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := strconv.ParseInt(mux.Vars(r)["subscriptionId"], 10, 64)
	if err != nil || subscriptionID <= 0 {
		h.logger.Warn("GET /subscriptions/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	sub, err := h.service.GetByID(r.Context(), subscriptionID)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			h.logger.Warn("GET /subscriptions/{id} - Subscription not found: subscription_id=%d", subscriptionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /subscriptions/{id} - Failed to get subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /subscriptions/{id} - Subscription retrieved successfully: subscription_id=%d", subscriptionID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSubscription(sub, h.precision))
}
