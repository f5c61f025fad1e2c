package auth

import (
	"context"

	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
)

// AuthService defines authentication and user administration logic.
type AuthService interface {
	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a live refresh token for a fresh pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the presented refresh token
	Logout(ctx context.Context, refreshToken string) error

	// Register creates a new user account (RRHH only)
	Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)

	// ListUsers retrieves all user accounts (RRHH only)
	ListUsers(ctx context.Context) ([]user.UserResponse, error)
}
