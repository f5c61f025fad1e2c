package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendance.EventRepository
	employee.EmployeeRepository
	tokenService token.TokenService
}

func NewAttendanceService(
	eventRepository attendance.EventRepository,
	employeeRepository employee.EmployeeRepository,
	tokenService token.TokenService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EventRepository:    eventRepository,
		EmployeeRepository: employeeRepository,
		tokenService:       tokenService,
	}
}

// Register implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Register(ctx context.Context, req attendance.RegisterRequest) (attendance.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RegisterResponse{}, err
	}

	// Token check comes first so an expired QR rejects before anything
	// is written
	if req.Token != "" {
		if _, err := s.tokenService.Validate(ctx, req.Token); err != nil {
			return attendance.RegisterResponse{}, err
		}
	}

	emp, err := s.EmployeeRepository.GetByLegajo(ctx, req.Legajo)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	last, err := s.EventRepository.GetLastByLegajo(ctx, req.Legajo)
	if err != nil {
		return attendance.RegisterResponse{}, fmt.Errorf("failed to load last event: %w", err)
	}

	now := time.Now().In(time.Local)
	event := attendance.Event{
		Legajo:       emp.Legajo,
		Nombre:       emp.Nombre,
		Apellido:     emp.Apellido,
		Secretaria:   emp.Secretaria,
		LugarTrabajo: emp.LugarTrabajo,
		Tipo:         attendance.NextTipo(last, now),
		Fecha:        dateutil.FormatFecha(now),
		Hora:         dateutil.FormatHora(now),
	}
	if req.Token != "" {
		event.Token = &req.Token
	}

	created, err := s.EventRepository.Create(ctx, event)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	return attendance.RegisterResponse{
		ID:    created.ID,
		Tipo:  string(created.Tipo),
		Fecha: created.Fecha,
		Hora:  created.Hora,
		Empleado: attendance.EmpleadoSnapshot{
			Legajo:       emp.Legajo,
			Nombre:       emp.Nombre,
			Apellido:     emp.Apellido,
			LugarTrabajo: emp.LugarTrabajo,
		},
	}, nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context, area string, pageSize int, cursorID string) ([]attendance.EventResponse, string, error) {
	fecha := dateutil.FormatFecha(time.Now().In(time.Local))

	events, err := s.EventRepository.ListByFecha(ctx, fecha, area, pageSize, cursorID)
	if err != nil {
		return nil, "", err
	}

	return toPage(events, pageSize)
}

// ListPage implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListPage(ctx context.Context, area string, pageSize int, cursorID string) ([]attendance.EventResponse, string, error) {
	events, err := s.EventRepository.ListPage(ctx, area, pageSize, cursorID)
	if err != nil {
		return nil, "", err
	}

	return toPage(events, pageSize)
}

func toPage(events []attendance.Event, pageSize int) ([]attendance.EventResponse, string, error) {
	responses := make([]attendance.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, attendance.ToEventResponse(e))
	}

	nextCursor := ""
	if pageSize > 0 && len(events) == pageSize {
		nextCursor = events[len(events)-1].ID
	}

	return responses, nextCursor, nil
}
