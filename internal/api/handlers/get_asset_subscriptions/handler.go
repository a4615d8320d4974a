package get_asset_subscriptions

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
	msgInvalidAssetID = "некорректный ID носителя"
	msgInvalidParams  = "некорректные параметры запроса"
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

// Handle GET /api/v1/assets/{assetId}/subscriptions
// Query params: states, from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseInt(mux.Vars(r)["assetId"], 10, 64)
	if err != nil || assetID <= 0 {
		h.logger.Warn("GET /assets/{id}/subscriptions - Invalid asset ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssetID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(assetID, q.Get("states"), q.Get("from"), q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /assets/{id}/subscriptions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByAsset(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrInvalidInput):
			h.logger.Warn("GET /assets/{id}/subscriptions - Invalid filter: asset_id=%d, error=%v", assetID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /assets/{id}/subscriptions - Failed to list subscriptions: asset_id=%d, error=%v",
				assetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /assets/{id}/subscriptions - Subscriptions retrieved successfully: asset_id=%d, count=%d",
		assetID, len(result))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSubscriptionList(result, h.precision))
}
