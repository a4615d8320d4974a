package update_subscription

import (
	"errors"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_subscription: invalid input data")

	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("update_subscription: subscription not found")

	// ErrAssetNotFound возвращается, когда носитель не найден в каталоге
	ErrAssetNotFound = errors.New("update_subscription: asset not found")

	// ErrContractNotFound возвращается, когда рамочный договор не найден
	ErrContractNotFound = errors.New("update_subscription: framework contract not found")

	// ErrContractCustomerMismatch возвращается, когда договор принадлежит другому клиенту
	ErrContractCustomerMismatch = errors.New("update_subscription: framework contract belongs to another customer")

	// ErrConcurrentUpdate возвращается, когда подписку или носитель одновременно меняет другая операция
	// Операцию нужно повторить целиком
	ErrConcurrentUpdate = errors.New("update_subscription: concurrent update, retry the operation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_subscription: internal error")
)

// Бизнес-ошибки пробрасываются без изменений
var (
	ErrTerminalState       = domain.ErrTerminalState
	ErrAssetUnavailable    = domain.ErrAssetUnavailable
	ErrAssetNotOperational = domain.ErrAssetNotOperational
	ErrAssetDoubleBooked   = domain.ErrAssetDoubleBooked
)
