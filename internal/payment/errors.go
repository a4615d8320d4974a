package payment

import "errors"

var (
	ErrInvalidAdvancePercentage = errors.New("payment: advance percentage must be between 0 and 100")
	ErrInvalidInstallmentCount  = errors.New("payment: installment count must not be negative")
)
