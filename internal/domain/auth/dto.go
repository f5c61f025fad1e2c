package auth

import (
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresIn  int64             `json:"access_token_expires_in"`
	RefreshToken          string            `json:"-"`
	RefreshTokenExpiresIn int64             `json:"-"`
	User                  user.UserResponse `json:"user"`
}
