package update_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/api/middleware"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
	updateSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/update_subscription"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgNotFound              = "подписка не найдена"
	msgAssetNotFound         = "рекламный носитель не найден"
	msgContractNotFound      = "рамочный договор не найден"
	msgContractWrongCustomer = "рамочный договор принадлежит другому клиенту"
)

type Handler struct {
	useCase   UpdateSubscriptionUseCase
	precision domain.CurrencyPrecision
	logger    Logger
}

func NewHandler(useCase UpdateSubscriptionUseCase, precision domain.CurrencyPrecision, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		precision: precision,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/subscriptions/{subscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := strconv.ParseInt(mux.Vars(r)["subscriptionId"], 10, 64)
	if err != nil || subscriptionID <= 0 {
		h.logger.Warn("PATCH /subscriptions/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /subscriptions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /subscriptions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(subscriptionID, userID)
	if err != nil {
		h.logger.Warn("PATCH /subscriptions/{id} - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case domain.IsRuleViolation(err):
			h.logger.Warn("PATCH /subscriptions/{id} - Rejected: subscription_id=%d, error=%v", subscriptionID, err)
			handlers.RespondRuleViolation(w, err)

		case errors.Is(err, updateSubscription.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /subscriptions/{id} - Concurrent update: subscription_id=%d", subscriptionID)
			handlers.RespondConcurrentUpdate(w)

		case errors.Is(err, updateSubscription.ErrInvalidInput):
			h.logger.Warn("PATCH /subscriptions/{id} - Invalid input: subscription_id=%d, error=%v", subscriptionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateSubscription.ErrSubscriptionNotFound):
			h.logger.Warn("PATCH /subscriptions/{id} - Subscription not found: subscription_id=%d", subscriptionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateSubscription.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, updateSubscription.ErrContractNotFound):
			handlers.RespondNotFound(w, msgContractNotFound)

		case errors.Is(err, updateSubscription.ErrContractCustomerMismatch):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgContractWrongCustomer)

		default:
			h.logger.Error("PATCH /subscriptions/{id} - Failed to update subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /subscriptions/{id} - Subscription updated successfully: subscription_id=%d, user_id=%d",
		subscriptionID, userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSubscription(result.Subscription, h.precision))
}
