package goCommon

import "errors"

var (
	// ErrBuilderUsed is returned by [Builder.Build] on a builder that already built a runtime.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)
