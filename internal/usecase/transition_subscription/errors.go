package transition_subscription

import (
	"errors"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_subscription: invalid input data")

	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("transition_subscription: subscription not found")

	// ErrAssetNotFound возвращается, когда носитель не найден в каталоге
	ErrAssetNotFound = errors.New("transition_subscription: asset not found")

	// ErrConcurrentUpdate возвращается, когда подписку или носитель одновременно меняет другая операция
	ErrConcurrentUpdate = errors.New("transition_subscription: concurrent update, retry the operation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_subscription: internal error")
)

// Бизнес-ошибки пробрасываются без изменений
var (
	ErrInvalidTransition   = domain.ErrInvalidTransition
	ErrTerminalState       = domain.ErrTerminalState
	ErrAssetUnavailable    = domain.ErrAssetUnavailable
	ErrAssetNotOperational = domain.ErrAssetNotOperational
	ErrAssetDoubleBooked   = domain.ErrAssetDoubleBooked
	ErrAdvancePending      = domain.ErrAdvancePending
	ErrArtworkNotApproved  = domain.ErrArtworkNotApproved
)
