package attendance

import "errors"

// Attendance domain errors
var (
	ErrLegajoRequired = errors.New("legajo is required")
	ErrEventNotFound  = errors.New("attendance event not found")
)
