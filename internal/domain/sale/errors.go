package sale

import "errors"

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPropertySold        = errors.New("property already sold")
	ErrInvalidPrice        = errors.New("sale price must be positive")
	ErrInvalidRate         = errors.New("commission rate must be between 0 and 100")
	ErrInvalidInstallments = errors.New("installment count must be at least 1")
	ErrInstallmentNotFound = errors.New("installment not found")
)
