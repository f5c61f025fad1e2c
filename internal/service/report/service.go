package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/report"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/excel"
)

type ReportServiceImpl struct {
	eventRepo      attendance.EventRepository
	absenceService absence.AbsenceService
}

func NewReportService(
	eventRepository attendance.EventRepository,
	absenceService absence.AbsenceService,
) report.ReportService {
	return &ReportServiceImpl{
		eventRepo:      eventRepository,
		absenceService: absenceService,
	}
}

// QueryEvents implements report.ReportService.
func (s *ReportServiceImpl) QueryEvents(ctx context.Context, q report.EventQuery) ([]attendance.EventResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var desdeT, hastaT *time.Time
	if q.Desde != "" {
		t, _ := dateutil.NormalizeLocalDate(q.Desde)
		desdeT = &t
	}
	if q.Hasta != "" {
		t, _ := dateutil.NormalizeLocalDate(q.Hasta)
		hastaT = &t
	}

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]attendance.Event, 0, len(events))
	for _, e := range events {
		if !dateutil.InRange(e.Time(), desdeT, hastaT) {
			continue
		}
		if !matches(q, e) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Time().After(filtered[j].Time())
	})

	responses := make([]attendance.EventResponse, 0, len(filtered))
	for _, e := range filtered {
		responses = append(responses, attendance.ToEventResponse(e))
	}

	return responses, nil
}

// matches applies the substring filters: legajo, full name and area are all
// case-insensitive contains checks, matching how operators type partial
// search terms.
func matches(q report.EventQuery, e attendance.Event) bool {
	if q.Legajo != "" && !containsFold(e.Legajo, q.Legajo) {
		return false
	}
	if q.Nombre != "" && !containsFold(e.Nombre+" "+e.Apellido, q.Nombre) {
		return false
	}
	if q.Area != "" && !containsFold(e.LugarTrabajo, q.Area) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// QueryAbsences implements report.ReportService.
func (s *ReportServiceImpl) QueryAbsences(ctx context.Context, desde, hasta, area string) ([]absence.AbsenceResponse, error) {
	return s.absenceService.ListByRange(ctx, desde, hasta, area)
}

// ExportEvents implements report.ReportService.
func (s *ReportServiceImpl) ExportEvents(ctx context.Context, q report.EventQuery, layout report.ExportLayout) ([]byte, error) {
	events, err := s.QueryEvents(ctx, q)
	if err != nil {
		return nil, err
	}

	var table excel.Table
	switch layout {
	case report.LayoutRRHH:
		table.Headers = []string{"Legajo", "Nombre", "Apellido", "Tipo", "Hora Fecha", "Secretaria", "Lugar de Trabajo"}
		for _, e := range events {
			table.Rows = append(table.Rows, []string{
				e.Legajo, e.Nombre, e.Apellido, e.Tipo,
				e.Hora + " " + e.Fecha, e.Secretaria, e.LugarTrabajo,
			})
		}
	default:
		table.Headers = []string{"Legajo", "Nombre", "Apellido", "Tipo", "Hora", "Fecha"}
		for _, e := range events {
			table.Rows = append(table.Rows, []string{
				e.Legajo, e.Nombre, e.Apellido, e.Tipo, e.Hora, e.Fecha,
			})
		}
	}

	return excel.Write(table)
}

// ExportAbsences implements report.ReportService.
func (s *ReportServiceImpl) ExportAbsences(ctx context.Context, desde, hasta, area string, layout report.ExportLayout) ([]byte, error) {
	absences, err := s.absenceService.ListByRange(ctx, desde, hasta, area)
	if err != nil {
		return nil, err
	}

	var table excel.Table
	switch layout {
	case report.LayoutRRHH:
		table.Headers = []string{"Legajo", "Nombre", "Apellido", "Fecha", "Justificativo", "Justificado", "Secretaria", "Lugar de Trabajo"}
		for _, a := range absences {
			table.Rows = append(table.Rows, []string{
				a.Legajo, deref(a.Nombre), deref(a.Apellido), a.Fecha,
				deref(a.Justificativo), boolCell(a.Justificado),
				deref(a.Secretaria), deref(a.LugarTrabajo),
			})
		}
	default:
		table.Headers = []string{"Legajo", "Nombre", "Apellido", "Fecha", "Justificativo", "Justificado"}
		for _, a := range absences {
			table.Rows = append(table.Rows, []string{
				a.Legajo, deref(a.Nombre), deref(a.Apellido), a.Fecha,
				deref(a.Justificativo), boolCell(a.Justificado),
			})
		}
	}

	return excel.Write(table)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolCell(b bool) string {
	if b {
		return "Si"
	}
	return "No"
}
