package availability

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrUnknownProduct      = errors.New("unknown product")
	ErrDateOutOfRange      = errors.New("date outside bookable range")
	ErrUpstreamUnavailable = errors.New("calendar data unavailable")
)
