package create_subscription

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_subscription: invalid input data")

	// ErrAssetNotFound возвращается, когда носитель не найден в каталоге
	ErrAssetNotFound = errors.New("create_subscription: asset not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_subscription: customer not found")

	// ErrContractNotFound возвращается, когда рамочный договор не найден
	ErrContractNotFound = errors.New("create_subscription: framework contract not found")

	// ErrContractCustomerMismatch возвращается, когда договор принадлежит другому клиенту
	ErrContractCustomerMismatch = errors.New("create_subscription: framework contract belongs to another customer")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_subscription: internal error")
)
