package create_subscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/api/middleware"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
	createSubscription "github.com/m04kA/SMC-AdPlacementService/internal/usecase/create_subscription"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgAssetNotFound         = "рекламный носитель не найден"
	msgCustomerNotFound      = "клиент не найден"
	msgContractNotFound      = "рамочный договор не найден"
	msgContractWrongCustomer = "рамочный договор принадлежит другому клиенту"
)

type Handler struct {
	useCase   CreateSubscriptionUseCase
	precision domain.CurrencyPrecision
	logger    Logger
}

func NewHandler(useCase CreateSubscriptionUseCase, precision domain.CurrencyPrecision, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		precision: precision,
		logger:    logger,
	}
}

// Handle POST /api/v1/subscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscriptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /subscriptions - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSubscription.ErrInvalidInput):
			h.logger.Warn("POST /subscriptions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createSubscription.ErrAssetNotFound):
			h.logger.Warn("POST /subscriptions - Asset not found: asset_id=%d", req.AssetID)
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, createSubscription.ErrCustomerNotFound):
			h.logger.Warn("POST /subscriptions - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createSubscription.ErrContractNotFound):
			h.logger.Warn("POST /subscriptions - Contract not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgContractNotFound)

		case errors.Is(err, createSubscription.ErrContractCustomerMismatch):
			h.logger.Warn("POST /subscriptions - Contract of another customer: customer_id=%d", req.CustomerID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgContractWrongCustomer)

		default:
			h.logger.Error("POST /subscriptions - Failed to create subscription: user_id=%d, customer_id=%d, error=%v",
				userID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscriptions - Subscription created successfully: subscription_id=%d, user_id=%d",
		result.Subscription.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSubscription(result.Subscription, h.precision))
}
