package report

import (
	"context"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
)

// ReportService defines the query/filter/export layer behind the reports
// screens.
type ReportService interface {
	// QueryEvents fetches a broad event set and applies range and
	// substring filters in memory, newest first
	QueryEvents(ctx context.Context, q EventQuery) ([]attendance.EventResponse, error)

	// QueryAbsences applies the same inclusive range filter to absences
	QueryAbsences(ctx context.Context, desde, hasta, area string) ([]absence.AbsenceResponse, error)

	// ExportEvents renders filtered events as an .xlsx workbook
	ExportEvents(ctx context.Context, q EventQuery, layout ExportLayout) ([]byte, error)

	// ExportAbsences renders filtered absences as an .xlsx workbook
	ExportAbsences(ctx context.Context, desde, hasta, area string, layout ExportLayout) ([]byte, error)
}
