package user

import "errors"

// User domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrRRHHAccessRequired  = errors.New("rrhh access required")
	ErrInvalidRole         = errors.New("invalid role")
)
