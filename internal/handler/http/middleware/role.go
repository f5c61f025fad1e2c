package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

// RequireRRHH requires the rrhh role
func RequireRRHH(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrRRHHAccessRequired)
			return
		}

		rol, ok := claims["rol"].(string)
		if !ok {
			response.HandleError(w, user.ErrRRHHAccessRequired)
			return
		}

		if user.Role(rol) != user.RoleRRHH {
			response.HandleError(w, user.ErrRRHHAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires an area admin or rrhh role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		rolStr, ok := claims["rol"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		rol := user.Role(rolStr)
		if rol != user.RoleAdmin && rol != user.RoleRRHH {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimArea returns the caller's lugar de trabajo claim, or "" for
// unscoped (rrhh) users.
func ClaimArea(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	area, _ := claims["lugar_trabajo"].(string)
	return area
}

// ClaimRole returns the caller's role claim.
func ClaimRole(r *http.Request) user.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	rol, _ := claims["rol"].(string)
	return user.Role(rol)
}
