package bloodbag

import "errors"

var (
	ErrBagNotFound         = errors.New("blood bag not found")
	ErrBagNumberExists     = errors.New("bag number already registered")
	ErrBagHasComponents    = errors.New("blood bag has derived components")
	ErrBagHasDistributions = errors.New("blood bag has distribution records")
	ErrMissingFields       = errors.New("missing required fields")
)
