package checkout

import "errors"

// Service errors
var (
	// ErrPaymentNotReady means the readiness check came back negative: the
	// device has no usable payment method. Terminal for the attempt.
	ErrPaymentNotReady = errors.New("no usable payment method available")

	ErrSessionNotFound   = errors.New("checkout session not found")
	ErrInvalidTransition = errors.New("event not allowed in current session state")
	ErrCaptureFailed     = errors.New("payment capture failed")
)
