package attendance

import "context"

// EventRepository defines data access methods for attendance events.
// There is no Update or Delete: the collection is append-only.
type EventRepository interface {
	// Create appends a new attendance event
	Create(ctx context.Context, event Event) (Event, error)

	// GetLastByLegajo retrieves the employee's most recent event by
	// creation time, or nil when none exist
	GetLastByLegajo(ctx context.Context, legajo string) (*Event, error)

	// ListByFecha retrieves events for one stored fecha, optionally
	// restricted to an area, newest hora first
	ListByFecha(ctx context.Context, fecha string, area string, pageSize int, cursorID string) ([]Event, error)

	// ListAll retrieves the broad row set the report layer filters
	// in memory
	ListAll(ctx context.Context) ([]Event, error)

	// ListPage retrieves a creation-time-descending page, optionally
	// restricted to an area
	ListPage(ctx context.Context, area string, pageSize int, cursorID string) ([]Event, error)
}
