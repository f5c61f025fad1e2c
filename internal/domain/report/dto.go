package report

import (
	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

// EventQuery carries the range and substring filters of the reports
// screens. Dates accept YYYY-MM-DD or DD/MM/YYYY; substrings are matched
// case-insensitively.
type EventQuery struct {
	Desde  string `json:"desde"`
	Hasta  string `json:"hasta"`
	Legajo string `json:"legajo"`
	Nombre string `json:"nombre"`
	Area   string `json:"area"`
}

func (q *EventQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Desde != "" {
		if _, err := dateutil.NormalizeLocalDate(q.Desde); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "desde",
				Message: "desde must be YYYY-MM-DD or DD/MM/YYYY",
			})
		}
	}

	if q.Hasta != "" {
		if _, err := dateutil.NormalizeLocalDate(q.Hasta); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "hasta",
				Message: "hasta must be YYYY-MM-DD or DD/MM/YYYY",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExportLayout selects the column set of an .xlsx export.
type ExportLayout string

const (
	// LayoutRRHH includes secretaria and lugar de trabajo columns.
	LayoutRRHH ExportLayout = "rrhh"
	// LayoutAdmin is the reduced per-area column set.
	LayoutAdmin ExportLayout = "admin"
)
