package absence

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
	employee.EmployeeRepository
}

func NewAbsenceService(
	absenceRepository absence.AbsenceRepository,
	employeeRepository employee.EmployeeRepository,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		AbsenceRepository:  absenceRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Upsert implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Upsert(ctx context.Context, req absence.UpsertRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	day, err := dateutil.NormalizeLocalDate(req.Fecha)
	if err != nil {
		return absence.AbsenceResponse{}, absence.ErrInvalidFecha
	}
	fecha := dateutil.FormatFecha(day)

	record := absence.Absence{
		Legajo:      req.Legajo,
		Fecha:       fecha,
		Justificado: req.Justificado,
	}
	if req.Justificativo != "" {
		record.Justificativo = &req.Justificativo
	}

	// Denormalize the employee snapshot best-effort; an unknown legajo
	// still gets its justification stored
	if emp, err := s.EmployeeRepository.GetByLegajo(ctx, req.Legajo); err == nil {
		record.Nombre = &emp.Nombre
		record.Apellido = &emp.Apellido
		record.Secretaria = &emp.Secretaria
		record.LugarTrabajo = &emp.LugarTrabajo
	} else if err != employee.ErrEmployeeNotFound {
		slog.Warn("Failed to load employee for absence snapshot", "legajo", req.Legajo, "error", err)
	}

	existing, err := s.AbsenceRepository.GetByLegajoAndFecha(ctx, req.Legajo, fecha)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	var saved absence.Absence
	if existing == nil {
		saved, err = s.AbsenceRepository.Create(ctx, record)
	} else {
		record.ID = existing.ID
		saved, err = s.AbsenceRepository.Update(ctx, record)
	}
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	return absence.ToResponse(saved), nil
}

// ListByRange implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListByRange(ctx context.Context, desde, hasta, area string) ([]absence.AbsenceResponse, error) {
	var desdeT, hastaT *time.Time

	if desde != "" {
		t, err := dateutil.NormalizeLocalDate(desde)
		if err != nil {
			return nil, absence.ErrInvalidFecha
		}
		desdeT = &t
	}
	if hasta != "" {
		t, err := dateutil.NormalizeLocalDate(hasta)
		if err != nil {
			return nil, absence.ErrInvalidFecha
		}
		hastaT = &t
	}

	records, err := s.AbsenceRepository.ListByArea(ctx, area)
	if err != nil {
		return nil, err
	}

	filtered := make([]absence.Absence, 0, len(records))
	for _, a := range records {
		day, err := dateutil.NormalizeLocalDate(a.Fecha)
		if err != nil {
			continue
		}
		if dateutil.InRange(day, desdeT, hastaT) {
			filtered = append(filtered, a)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		di, _ := dateutil.NormalizeLocalDate(filtered[i].Fecha)
		dj, _ := dateutil.NormalizeLocalDate(filtered[j].Fecha)
		return di.After(dj)
	})

	responses := make([]absence.AbsenceResponse, 0, len(filtered))
	for _, a := range filtered {
		responses = append(responses, absence.ToResponse(a))
	}

	return responses, nil
}
