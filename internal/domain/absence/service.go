package absence

import "context"

// AbsenceService defines business logic for absence justifications.
type AbsenceService interface {
	// Upsert normalizes the fecha, denormalizes employee fields
	// best-effort, and updates or creates the (legajo, fecha) record
	Upsert(ctx context.Context, req UpsertRequest) (AbsenceResponse, error)

	// ListByRange retrieves absences inside an inclusive day range,
	// optionally restricted to one area
	ListByRange(ctx context.Context, desde, hasta, area string) ([]AbsenceResponse, error)
}
