package game

import "errors"

var (
	// ErrNilSurface is returned when an engine is built without a drawing surface
	ErrNilSurface = errors.New("drawing surface is nil")

	// ErrInvalidConfig wraps every configuration validation failure
	ErrInvalidConfig = errors.New("invalid config")

	// ErrSchedulerStarted is returned when Start is called on a scheduler twice
	ErrSchedulerStarted = errors.New("scheduler already started")
)
