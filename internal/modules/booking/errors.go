package booking

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotificationFailed = errors.New("notification delivery failed")
)
