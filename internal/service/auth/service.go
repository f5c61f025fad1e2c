package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/auth"
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	decoded, err := jwtauth.VerifyToken(a.Service.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	typ, _ := decoded.Get("type")
	if typ != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := decoded.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	uid, ok := userID.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, uid)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the presented refresh token dies with the exchange
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Rol:          user.Role(req.Rol),
	}
	if req.LugarTrabajo != "" {
		newUser.LugarTrabajo = &req.LugarTrabajo
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// ListUsers implements auth.AuthService.
func (a *AuthServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := a.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
		userData.ID, userData.Email, userData.Rol, userData.LugarTrabajo,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.User = user.ToResponse(userData)
	return tokenResponse, nil
}
