package attendance

import "context"

// AttendanceService defines business logic for registering and listing
// attendance events.
type AttendanceService interface {
	// Register validates the scan token when present, resolves the
	// employee and appends the next alternating event
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// ListToday retrieves today's events, optionally for one area,
	// newest first
	ListToday(ctx context.Context, area string, pageSize int, cursorID string) ([]EventResponse, string, error)

	// ListPage retrieves a creation-time-descending page across all days
	ListPage(ctx context.Context, area string, pageSize int, cursorID string) ([]EventResponse, string, error)
}
