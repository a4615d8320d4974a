package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	quotePrice "github.com/m04kA/SMC-AdPlacementService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAssetNotFound      = "рекламный носитель не найден"
)

type Handler struct {
	useCase   QuotePriceUseCase
	precision domain.CurrencyPrecision
	logger    Logger
}

func NewHandler(useCase QuotePriceUseCase, precision domain.CurrencyPrecision, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		precision: precision,
		logger:    logger,
	}
}

// Handle POST /api/v1/quotes
// Публичный расчёт цены, ничего не сохраняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: asset_id=%d, error=%v", req.AssetID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quotePrice.ErrAssetNotFound):
			h.logger.Warn("POST /quotes - Asset not found: asset_id=%d", req.AssetID)
			handlers.RespondNotFound(w, msgAssetNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to quote: asset_id=%d, error=%v", req.AssetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: asset_id=%d, monthly_price=%s",
		req.AssetID, result.Breakdown.MonthlyPrice.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.precision))
}
