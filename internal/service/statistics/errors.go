package statistics

import "errors"

var (
	ErrInvalidYear = errors.New("year out of supported range")
)
