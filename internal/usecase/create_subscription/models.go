package create_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Request модель запроса на создание подписки
// Незаполненные выборы получают значения по умолчанию
type Request struct {
	ActorID             int64  // Пользователь, создающий подписку (X-User-ID)
	CustomerID          int64  // Клиент
	FrameworkContractID *int64 // Рамочный договор (опционально, того же клиента)
	AccountExecutiveID  *int64 // Менеджер (по умолчанию из договора или ActorID)
	AssetID             int64  // Рекламный носитель

	ContentType   *string // static | video, по умолчанию static
	Site          *string // по умолчанию определяется по атрибутам носителя
	Zone          *string
	Duration      *string // "3" | "6" | "12" | "24"
	PaymentMethod *string // cash | advance_balance | installments, по умолчанию cash

	InstallmentCount         *int
	AdvancePercentage        *decimal.Decimal
	ZoneSurchargeOverride    *decimal.Decimal
	ContentSurchargeOverride *decimal.Decimal

	StartDate *time.Time // по умолчанию сегодня
}

// Response модель ответа с созданной подпиской
type Response struct {
	Subscription *domain.Subscription
}
