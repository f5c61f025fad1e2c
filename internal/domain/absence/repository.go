package absence

import "context"

// AbsenceRepository defines data access methods for absence records.
type AbsenceRepository interface {
	// Create inserts a new absence record
	Create(ctx context.Context, a Absence) (Absence, error)

	// Update rewrites an existing record in place
	Update(ctx context.Context, a Absence) (Absence, error)

	// GetByLegajoAndFecha retrieves the record for one (legajo, fecha)
	// pair, or nil when none exists
	GetByLegajoAndFecha(ctx context.Context, legajo, fecha string) (*Absence, error)

	// ListByArea retrieves absence records, optionally restricted to one
	// lugar de trabajo
	ListByArea(ctx context.Context, area string) ([]Absence, error)

	// ExistsForFecha reports whether any record exists for the pair;
	// used by the unexcused-absence job to stay idempotent
	ExistsForFecha(ctx context.Context, legajo, fecha string) (bool, error)
}
