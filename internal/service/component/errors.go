package component

import "errors"

var (
	ErrComponentNotFound    = errors.New("component not found")
	ErrParentBagNotFound    = errors.New("parent blood bag not found")
	ErrInvalidComponentType = errors.New("invalid component type")
	ErrComponentDistributed = errors.New("component has already been distributed")
)
