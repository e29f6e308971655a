package shared

import "errors"

var (
	// Input validation errors
	ErrEmptyContent    = errors.New("please enter a value")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidItemSpec = errors.New("invalid item spec")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConfigExists  = errors.New("config file already exists")
)
