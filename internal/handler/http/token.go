package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

type TokenHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	QR(w http.ResponseWriter, r *http.Request)
}

type TokenHandlerImpl struct {
	tokenService token.TokenService
}

func NewTokenHandler(tokenService token.TokenService) TokenHandler {
	return &TokenHandlerImpl{tokenService: tokenService}
}

type generateTokenRequest struct {
	Area string `json:"area"`
}

// Generate implements TokenHandler.
func (h *TokenHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateTokenRequest

	// An empty body issues an area-less token
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Generate token decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	generated, err := h.tokenService.Generate(r.Context(), req.Area)
	if err != nil {
		slog.Error("Generate token service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Token generated", "area", generated.Area)
	response.Created(w, "Token generated", generated)
}

// Validate implements TokenHandler.
func (h *TokenHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	t, err := h.tokenService.Validate(r.Context(), value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      t.Value,
		"area":       t.Area,
		"expires_at": t.ExpiresAt,
	})
}

// Revoke implements TokenHandler.
func (h *TokenHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	if err := h.tokenService.Revoke(r.Context(), value); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Token revoked", "token", value)
	response.SuccessWithMessage(w, "Token revoked", nil)
}

// QR implements TokenHandler.
func (h *TokenHandlerImpl) QR(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	png, err := h.tokenService.RenderPNG(r.Context(), value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
