package get_customer_subscriptions

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
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidState      = "некорректное состояние подписки"
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

// Handle GET /api/v1/customers/{customerId}/subscriptions
// Query params: state (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/subscriptions - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	req := &models.ListByCustomerRequest{CustomerID: customerID}
	if state := r.URL.Query().Get("state"); state != "" {
		req.State = &state
	}

	result, err := h.service.ListByCustomer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("GET /customers/{id}/subscriptions - Failed to list subscriptions: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/subscriptions - Subscriptions retrieved successfully: customer_id=%d, count=%d",
		customerID, len(result))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSubscriptionList(result, h.precision))
}
