package absence

import "time"

// Absence is a per-day absence record. At most one exists per
// (legajo, fecha); the upsert plus a unique index enforce it.
type Absence struct {
	ID            string
	Legajo        string
	Fecha         string // dd/mm/yyyy
	Justificativo *string
	Justificado   bool
	Nombre        *string
	Apellido      *string
	Secretaria    *string
	LugarTrabajo  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
