package absence

import (
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

type UpsertRequest struct {
	Legajo        string `json:"legajo"`
	Fecha         string `json:"fecha"` // YYYY-MM-DD or DD/MM/YYYY
	Justificativo string `json:"justificativo"`
	Justificado   bool   `json:"justificado"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Legajo) {
		errs = append(errs, validator.ValidationError{
			Field:   "legajo",
			Message: "legajo is required",
		})
	}

	if validator.IsEmpty(r.Fecha) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceResponse struct {
	ID            string  `json:"id"`
	Legajo        string  `json:"legajo"`
	Fecha         string  `json:"fecha"`
	Justificativo *string `json:"justificativo"`
	Justificado   bool    `json:"justificado"`
	Nombre        *string `json:"nombre,omitempty"`
	Apellido      *string `json:"apellido,omitempty"`
	Secretaria    *string `json:"secretaria,omitempty"`
	LugarTrabajo  *string `json:"lugar_trabajo,omitempty"`
}

func ToResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:            a.ID,
		Legajo:        a.Legajo,
		Fecha:         a.Fecha,
		Justificativo: a.Justificativo,
		Justificado:   a.Justificado,
		Nombre:        a.Nombre,
		Apellido:      a.Apellido,
		Secretaria:    a.Secretaria,
		LugarTrabajo:  a.LugarTrabajo,
	}
}
