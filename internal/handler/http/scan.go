package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

// ScanHandler backs the public kiosk screen: no session, the scan token is
// the only credential.
type ScanHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	LookupEmployee(w http.ResponseWriter, r *http.Request)
	SelfRegister(w http.ResponseWriter, r *http.Request)
}

type ScanHandlerImpl struct {
	attendanceService attendance.AttendanceService
	employeeService   employee.EmployeeService
}

func NewScanHandler(
	attendanceService attendance.AttendanceService,
	employeeService employee.EmployeeService,
) ScanHandler {
	return &ScanHandlerImpl{
		attendanceService: attendanceService,
		employeeService:   employeeService,
	}
}

// Register implements ScanHandler.
func (h *ScanHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req attendance.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Scan register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The public flow always carries a token; registration without one is
	// reserved for authenticated callers
	if req.Token == "" {
		response.BadRequest(w, "token is required", nil)
		return
	}

	result, err := h.attendanceService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Scan register service error", "legajo", req.Legajo, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Fichada registered", "legajo", req.Legajo, "tipo", result.Tipo)
	response.Created(w, "Fichada registrada", result)
}

// LookupEmployee implements ScanHandler.
func (h *ScanHandlerImpl) LookupEmployee(w http.ResponseWriter, r *http.Request) {
	legajo := chi.URLParam(r, "legajo")

	emp, err := h.employeeService.GetByLegajo(r.Context(), legajo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// SelfRegister implements ScanHandler.
func (h *ScanHandlerImpl) SelfRegister(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Self register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Self register service error", "legajo", req.Legajo, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee self-registered", "legajo", created.Legajo)
	response.Created(w, "Empleado registrado", created)
}
