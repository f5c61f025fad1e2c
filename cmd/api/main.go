package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/config"
	appHTTP "github.com/munidigital/asistencias-backend-go/internal/handler/http"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/cron"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/database"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/jwt"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/qr"
	"github.com/munidigital/asistencias-backend-go/internal/repository/postgresql"
	absenceService "github.com/munidigital/asistencias-backend-go/internal/service/absence"
	attendanceService "github.com/munidigital/asistencias-backend-go/internal/service/attendance"
	serviceAuth "github.com/munidigital/asistencias-backend-go/internal/service/auth"
	employeeService "github.com/munidigital/asistencias-backend-go/internal/service/employee"
	reportService "github.com/munidigital/asistencias-backend-go/internal/service/report"
	tokenService "github.com/munidigital/asistencias-backend-go/internal/service/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	tokenRepo := postgresql.NewTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	tokenValidity, err := time.ParseDuration(cfg.Token.Validity)
	if err != nil {
		log.Fatal("Invalid TOKEN_VALIDITY: ", err)
	}
	qrGenerator := qr.NewGenerator(cfg.App.FrontendURL, cfg.QR.QuickChartURL, cfg.QR.Size)

	tokenSvc := tokenService.NewTokenService(tokenRepo, qrGenerator, tokenValidity)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, employeeRepo, tokenSvc)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(eventRepo, absenceSvc)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	tokenHandler := appHTTP.NewTokenHandler(tokenSvc)
	scanHandler := appHTTP.NewScanHandler(attendanceSvc, employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		tokenHandler,
		scanHandler,
		attendanceHandler,
		absenceHandler,
		employeeHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(tokenRepo).RegisterJobs(scheduler)
	cron.NewAbsenceJobs(absenceRepo, eventRepo, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
