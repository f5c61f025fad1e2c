package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
)

// AbsenceJobs backfills unexcused absence records for employees who never
// scanned on a closed day, so the justification screen has a row to edit.
type AbsenceJobs struct {
	absenceRepo  absence.AbsenceRepository
	eventRepo    attendance.EventRepository
	employeeRepo employee.EmployeeRepository
}

func NewAbsenceJobs(
	absenceRepo absence.AbsenceRepository,
	eventRepo attendance.EventRepository,
	employeeRepo employee.EmployeeRepository,
) *AbsenceJobs {
	return &AbsenceJobs{
		absenceRepo:  absenceRepo,
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_unexcused_absences", 1*time.Hour, j.MarkUnexcusedAbsences)
}

func (j *AbsenceJobs) MarkUnexcusedAbsences(ctx context.Context) error {
	// Only run in the first hour after local midnight, once yesterday
	// has fully closed
	if time.Now().In(time.Local).Hour() != 0 {
		return nil
	}

	yesterday := time.Now().In(time.Local).AddDate(0, 0, -1)
	fecha := dateutil.FormatFecha(yesterday)

	slog.Info("Cron: Starting mark unexcused absences job", "fecha", fecha)

	scanned, err := j.legajosWithEvents(ctx, fecha)
	if err != nil {
		return err
	}

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		if scanned[emp.Legajo] {
			continue
		}

		// Skip when a record already exists, so reruns stay idempotent
		exists, err := j.absenceRepo.ExistsForFecha(ctx, emp.Legajo, fecha)
		if err != nil {
			slog.Error("Cron: Failed to check absence record", "legajo", emp.Legajo, "error", err)
			continue
		}
		if exists {
			continue
		}

		record := absence.Absence{
			Legajo:       emp.Legajo,
			Fecha:        fecha,
			Justificado:  false,
			Nombre:       &emp.Nombre,
			Apellido:     &emp.Apellido,
			Secretaria:   &emp.Secretaria,
			LugarTrabajo: &emp.LugarTrabajo,
		}

		if _, err := j.absenceRepo.Create(ctx, record); err != nil {
			slog.Error("Cron: Failed to create absence record", "legajo", emp.Legajo, "error", err)
			continue
		}

		marked++
	}

	slog.Info("Cron: Marked unexcused absences", "fecha", fecha, "count", marked)
	return nil
}

// legajosWithEvents pages through every event stored for one fecha and
// collects the legajos that scanned at least once.
func (j *AbsenceJobs) legajosWithEvents(ctx context.Context, fecha string) (map[string]bool, error) {
	const pageSize = 500

	scanned := make(map[string]bool)
	cursor := ""

	for {
		events, err := j.eventRepo.ListByFecha(ctx, fecha, "", pageSize, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to list events for fecha %s: %w", fecha, err)
		}

		for _, e := range events {
			scanned[e.Legajo] = true
		}

		if len(events) < pageSize {
			return scanned, nil
		}
		cursor = events[len(events)-1].ID
	}
}
