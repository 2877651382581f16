package distribution

import "errors"

var (
	ErrDistributionNotFound  = errors.New("distribution not found")
	ErrBagNotFound           = errors.New("blood bag not found")
	ErrBagAlreadyDistributed = errors.New("blood bag has already been distributed")
	ErrMissingFields         = errors.New("missing required fields")
)
