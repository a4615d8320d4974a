package update_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Request модель запроса на изменение подписки
// nil означает "не менять"
type Request struct {
	ActorID        int64
	SubscriptionID int64

	FrameworkContractID *int64
	AccountExecutiveID  *int64
	AssetID             *int64

	ContentType   *string
	Site          *string
	Zone          *string
	Duration      *string
	PaymentMethod *string

	InstallmentCount         *int
	AdvancePercentage        *decimal.Decimal
	ZoneSurchargeOverride    *decimal.Decimal // 0 возвращает к значению из каталога
	ContentSurchargeOverride *decimal.Decimal // 0 возвращает к значению из каталога

	AdvanceReceived *bool
	ArtworkState    *string
	StartDate       *time.Time
}

// Response модель ответа с изменённой подпиской
type Response struct {
	Subscription *domain.Subscription
}

// changes что затронул патч
type changes struct {
	contract bool // рамочный договор
	asset    bool // носитель
	pricing  bool // входные данные цены
	plan     bool // условия оплаты
	period   bool // даты
}

func (c changes) needsAsset() bool {
	return c.asset || c.pricing
}
