package order

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	ErrTransport          = errors.New("order service request failed")
	ErrNotCancellable     = errors.New("order can no longer be canceled")
)
