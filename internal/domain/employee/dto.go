package employee

import (
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Legajo       string `json:"legajo"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	LugarTrabajo string `json:"lugar_trabajo"`
	Secretaria   string `json:"secretaria"`
	Horario      string `json:"horario"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Legajo) {
		errs = append(errs, validator.ValidationError{
			Field:   "legajo",
			Message: "legajo is required",
		})
	} else if !validator.IsValidLegajo(r.Legajo) {
		errs = append(errs, validator.ValidationError{
			Field:   "legajo",
			Message: "legajo may only contain letters, digits and dashes",
		})
	}

	if validator.IsEmpty(r.Nombre) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre is required",
		})
	}

	if validator.IsEmpty(r.Apellido) {
		errs = append(errs, validator.ValidationError{
			Field:   "apellido",
			Message: "apellido is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Legajo       string `json:"legajo"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	LugarTrabajo string `json:"lugar_trabajo"`
	Secretaria   string `json:"secretaria"`
	Horario      string `json:"horario"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID,
		Legajo:       emp.Legajo,
		Nombre:       emp.Nombre,
		Apellido:     emp.Apellido,
		LugarTrabajo: emp.LugarTrabajo,
		Secretaria:   emp.Secretaria,
		Horario:      emp.Horario,
	}
}
