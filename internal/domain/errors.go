package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrValidation             = errors.New("validation failed")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrWrongStep              = errors.New("action not allowed at current checkout step")
	ErrSubmitInProgress       = errors.New("order submission already in progress")
	ErrNotificationFailed     = errors.New("order notification failed")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrTrackingNumberRequired = errors.New("tracking number required for shipped status")
)
