package quote_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
)

// Request модель запроса на расчёт цены
// Ничего не сохраняется
type Request struct {
	AssetID int64

	ContentType *string
	Site        *string
	Zone        *string
	Duration    *string // текст длительности, непонятное значение даёт 0 месяцев

	InstallmentCount         *int
	AdvancePercentage        *decimal.Decimal
	ZoneSurchargeOverride    *decimal.Decimal
	ContentSurchargeOverride *decimal.Decimal
}

// Response модель ответа с ценой и планом оплаты
type Response struct {
	AssetID      int64
	AssetName    string
	Site         domain.Site
	SiteInferred bool // площадка определена по атрибутам носителя
	AssetFormat  string
	AssetSize    string
	Months       int
	Breakdown    pricing.Breakdown
	Plan         domain.PaymentPlan
}
