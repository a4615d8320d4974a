package inventory

import "errors"

var (
	// ErrAssetNotFound возвращается, когда рекламный носитель не найден в каталоге
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("inventory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("inventory client: invalid response")
)
