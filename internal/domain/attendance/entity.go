package attendance

import (
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
)

type Tipo string

const (
	TipoEntrada Tipo = "ENTRADA"
	TipoSalida  Tipo = "SALIDA"
)

// Event is one clock-in/clock-out scan. Events are append-only: once
// written they are never updated or deleted.
type Event struct {
	ID           string
	Legajo       string
	Nombre       string
	Apellido     string
	Secretaria   string
	LugarTrabajo string
	Tipo         Tipo
	Fecha        string // dd/mm/yyyy
	Hora         string // HH:MM:SS
	Token        *string
	CreatedAt    time.Time
}

// Time returns the event's point in time for ordering and range checks:
// created_at when set, otherwise the parsed fecha at local midnight.
func (e Event) Time() time.Time {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt
	}
	if t, err := dateutil.NormalizeLocalDate(e.Fecha); err == nil {
		return t
	}
	return time.Time{}
}

// NextTipo applies the alternation rule: a day always starts with ENTRADA,
// and each subsequent same-day scan toggles. last is nil when the employee
// has no prior events.
func NextTipo(last *Event, now time.Time) Tipo {
	if last == nil {
		return TipoEntrada
	}
	if !dateutil.SameDay(last.Time().In(time.Local), now) {
		return TipoEntrada
	}
	if last.Tipo == TipoEntrada {
		return TipoSalida
	}
	return TipoEntrada
}
