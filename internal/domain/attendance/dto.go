package attendance

import (
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Legajo string `json:"legajo"`
	Token  string `json:"token,omitempty"`
}

func (r *RegisterRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RegisterResponse mirrors what the scan screen shows after a successful
// fichada: who, which direction, and when.
type RegisterResponse struct {
	ID       string           `json:"id"`
	Tipo     string           `json:"tipo"`
	Fecha    string           `json:"fecha"`
	Hora     string           `json:"hora"`
	Empleado EmpleadoSnapshot `json:"empleado"`
}

type EmpleadoSnapshot struct {
	Legajo       string `json:"legajo"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	LugarTrabajo string `json:"lugar_trabajo"`
}

type EventResponse struct {
	ID           string  `json:"id"`
	Legajo       string  `json:"legajo"`
	Nombre       string  `json:"nombre"`
	Apellido     string  `json:"apellido"`
	Secretaria   string  `json:"secretaria"`
	LugarTrabajo string  `json:"lugar_trabajo"`
	Tipo         string  `json:"tipo"`
	Fecha        string  `json:"fecha"`
	Hora         string  `json:"hora"`
	Token        *string `json:"token,omitempty"`
}

func ToEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Legajo:       e.Legajo,
		Nombre:       e.Nombre,
		Apellido:     e.Apellido,
		Secretaria:   e.Secretaria,
		LugarTrabajo: e.LugarTrabajo,
		Tipo:         string(e.Tipo),
		Fecha:        e.Fecha,
		Hora:         e.Hora,
		Token:        e.Token,
	}
}
