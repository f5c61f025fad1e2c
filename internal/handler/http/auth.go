package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/munidigital/asistencias-backend-go/internal/domain/auth"
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Refresh token travels only in the HttpOnly cookie
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))

	slog.Info("User logged in", "email", loginReq.Email)
	response.Success(w, tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))

	response.Success(w, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
			slog.Error("Logout service error", "error", err)
		}
	}

	// Expire the cookie regardless
	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", 0))

	response.SuccessWithMessage(w, "Logged out", nil)
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.authService.Register(r.Context(), createReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered", "email", created.Email, "rol", created.Rol)
	response.Created(w, "User created", created)
}

// ListUsers implements AuthHandler.
func (a *AuthHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.authService.ListUsers(r.Context())
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}
