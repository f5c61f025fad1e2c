package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/middleware"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	tokenHandler TokenHandler,
	scanHandler ScanHandler,
	attendanceHandler AttendanceHandler,
	absenceHandler AbsenceHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencias-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Public kiosk flow: the scan token inside the request is the
		// only credential
		r.Route("/scan", func(r chi.Router) {
			r.Post("/", scanHandler.Register)
			r.Get("/empleados/{legajo}", scanHandler.LookupEmployee)
			r.Post("/empleados", scanHandler.SelfRegister)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/tokens", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", tokenHandler.Generate)
				r.Get("/{value}", tokenHandler.Validate)
				r.Delete("/{value}", tokenHandler.Revoke)
				r.Get("/{value}/qr", tokenHandler.QR)
			})

			r.Route("/asistencias", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/hoy", attendanceHandler.ListToday)
				r.Get("/", attendanceHandler.ListPage)
			})

			r.Route("/ausencias", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", absenceHandler.List)
				r.Put("/", absenceHandler.Upsert)
			})

			r.Route("/empleados", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", employeeHandler.List)
				r.Get("/page", employeeHandler.ListPage)
				r.Get("/{legajo}", employeeHandler.Get)
				r.Post("/", employeeHandler.Create)
			})

			r.Route("/reportes", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/asistencias", reportHandler.QueryEvents)
				r.Get("/asistencias/export", reportHandler.ExportEvents)
				r.Get("/ausencias", reportHandler.QueryAbsences)
				r.Get("/ausencias/export", reportHandler.ExportAbsences)
			})

			// RRHH only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireRRHH)
				r.Get("/", authHandler.ListUsers)
				r.Post("/", authHandler.Register)
			})
		})
	})

	return r
}
