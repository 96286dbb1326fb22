package repositories

import "errors"

// Repository errors
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrShippingOptionNotFound = errors.New("shipping option not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrMerchantNotFound       = errors.New("merchant not found")
)
