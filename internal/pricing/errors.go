package pricing

import "errors"

// Pricing errors
var (
	ErrUnknownShippingOption = errors.New("unknown shipping option")
	ErrNegativeSurcharge     = errors.New("negative surcharge")
	ErrNegativeBase          = errors.New("negative base total")
)
