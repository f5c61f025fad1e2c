package response

import (
	"errors"
	"net/http"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/auth"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// Scan token errors. Expired is 410 so the scan screen can tell a
	// stale QR apart from a mistyped one.
	case errors.Is(err, token.ErrTokenNotFound):
		NotFound(w, "Token not found")
	case errors.Is(err, token.ErrTokenExpired):
		Gone(w, "Token expired")
	case errors.Is(err, token.ErrTokenDisabled):
		Gone(w, "Token disabled")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrLegajoExists):
		Conflict(w, "Legajo already registered")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrInvalidFecha):
		BadRequest(w, "Invalid fecha, expected YYYY-MM-DD or DD/MM/YYYY", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrRRHHAccessRequired):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
