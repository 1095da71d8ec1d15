package pricing

import "errors"

var (
	ErrUnknownItem      = errors.New("unknown catalog item")
	ErrInvalidSelection = errors.New("invalid selection")
)
