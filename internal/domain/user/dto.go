package user

import (
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Rol          string `json:"rol"`
	LugarTrabajo string `json:"lugar_trabajo"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
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

	if !validator.IsInSlice(r.Rol, []string{string(RoleEmpleado), string(RoleAdmin), string(RoleRRHH)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "rol",
			Message: "rol must be one of empleado, admin, rrhh",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Nombre       string  `json:"nombre"`
	Apellido     string  `json:"apellido"`
	Rol          string  `json:"rol"`
	LugarTrabajo *string `json:"lugar_trabajo,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Nombre:       u.Nombre,
		Apellido:     u.Apellido,
		Rol:          string(u.Rol),
		LugarTrabajo: u.LugarTrabajo,
	}
}
