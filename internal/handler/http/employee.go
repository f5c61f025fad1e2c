package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPage(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Employee create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Employee create service error", "legajo", req.Legajo, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "legajo", created.Legajo)
	response.Created(w, "Empleado creado", created)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	legajo := chi.URLParam(r, "legajo")

	emp, err := h.employeeService.GetByLegajo(r.Context(), legajo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context(), effectiveArea(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListPage implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListPage(w http.ResponseWriter, r *http.Request) {
	pageSize, cursor := pageParams(r)

	employees, nextCursor, err := h.employeeService.ListPage(r.Context(), effectiveArea(r), pageSize, cursor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, employees, &response.Meta{
		NextCursor: nextCursor,
		Count:      len(employees),
	})
}
