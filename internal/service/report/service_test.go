package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/report"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeEventRepo struct {
	events []attendance.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) GetLastByLegajo(ctx context.Context, legajo string) (*attendance.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListByFecha(ctx context.Context, fecha string, area string, pageSize int, cursorID string) ([]attendance.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]attendance.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListPage(ctx context.Context, area string, pageSize int, cursorID string) ([]attendance.Event, error) {
	return f.events, nil
}

type fakeAbsenceService struct {
	responses []absence.AbsenceResponse
}

func (f *fakeAbsenceService) Upsert(ctx context.Context, req absence.UpsertRequest) (absence.AbsenceResponse, error) {
	return absence.AbsenceResponse{}, nil
}

func (f *fakeAbsenceService) ListByRange(ctx context.Context, desde, hasta, area string) ([]absence.AbsenceResponse, error) {
	return f.responses, nil
}

func day(s string) time.Time {
	t, err := dateutil.NormalizeLocalDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func event(id, legajo, nombre, apellido, area, fecha string, at time.Time) attendance.Event {
	return attendance.Event{
		ID:           id,
		Legajo:       legajo,
		Nombre:       nombre,
		Apellido:     apellido,
		Secretaria:   "Obras",
		LugarTrabajo: area,
		Tipo:         attendance.TipoEntrada,
		Fecha:        fecha,
		Hora:         "08:00:00",
		CreatedAt:    at,
	}
}

func setupReportTest() (*fakeEventRepo, report.ReportService) {
	eventRepo := &fakeEventRepo{events: []attendance.Event{
		event("ev-1", "1234", "Maria", "Gomez", "Corralon", "14/08/2026", day("14/08/2026").Add(8*time.Hour)),
		event("ev-2", "5678", "Juan", "Perez", "Palacio", "15/08/2026", day("15/08/2026").Add(8*time.Hour)),
		event("ev-3", "1234", "Maria", "Gomez", "Corralon", "16/08/2026", day("16/08/2026").Add(8*time.Hour)),
	}}
	return eventRepo, NewReportService(eventRepo, &fakeAbsenceService{})
}

func TestReportService_QueryEvents_HastaIncludesWholeDay(t *testing.T) {
	_, svc := setupReportTest()

	got, err := svc.QueryEvents(context.Background(), report.EventQuery{
		Desde: "2026-08-14",
		Hasta: "2026-08-15",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// An event late on the hasta day still matches
	assert.Equal(t, "ev-2", got[0].ID)
	assert.Equal(t, "ev-1", got[1].ID)
}

func TestReportService_QueryEvents_NewestFirst(t *testing.T) {
	_, svc := setupReportTest()

	got, err := svc.QueryEvents(context.Background(), report.EventQuery{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ev-3", got[0].ID)
	assert.Equal(t, "ev-1", got[2].ID)
}

func TestReportService_QueryEvents_NombreMatchesAcrossFullName(t *testing.T) {
	_, svc := setupReportTest()

	// Case-insensitive and spanning the nombre/apellido boundary
	got, err := svc.QueryEvents(context.Background(), report.EventQuery{Nombre: "ia gom"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "1234", e.Legajo)
	}
}

func TestReportService_QueryEvents_LegajoSubstring(t *testing.T) {
	_, svc := setupReportTest()

	got, err := svc.QueryEvents(context.Background(), report.EventQuery{Legajo: "56"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "5678", got[0].Legajo)
}

func TestReportService_QueryEvents_AreaFilterCaseInsensitive(t *testing.T) {
	_, svc := setupReportTest()

	got, err := svc.QueryEvents(context.Background(), report.EventQuery{Area: "corralon"})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestReportService_QueryEvents_InvalidDate(t *testing.T) {
	_, svc := setupReportTest()

	_, err := svc.QueryEvents(context.Background(), report.EventQuery{Desde: "14-08-2026"})
	assert.Error(t, err)
}

func TestReportService_ExportEvents_RRHHLayout(t *testing.T) {
	_, svc := setupReportTest()

	data, err := svc.ExportEvents(context.Background(), report.EventQuery{}, report.LayoutRRHH)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Legajo", "Nombre", "Apellido", "Tipo", "Hora Fecha", "Secretaria", "Lugar de Trabajo"}, rows[0])
	assert.Equal(t, "08:00:00 16/08/2026", rows[1][4])
}

func TestReportService_ExportEvents_AdminLayoutDropsRRHHColumns(t *testing.T) {
	_, svc := setupReportTest()

	data, err := svc.ExportEvents(context.Background(), report.EventQuery{}, report.LayoutAdmin)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	assert.Equal(t, []string{"Legajo", "Nombre", "Apellido", "Tipo", "Hora", "Fecha"}, rows[0])
}

func TestReportService_ExportAbsences(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	just := "Turno medico"
	absSvc := &fakeAbsenceService{responses: []absence.AbsenceResponse{
		{Legajo: "1234", Fecha: "15/08/2026", Justificativo: &just, Justificado: true},
	}}
	svc := NewReportService(eventRepo, absSvc)

	data, err := svc.ExportAbsences(context.Background(), "", "", "", report.LayoutAdmin)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Turno medico", rows[1][4])
	assert.Equal(t, "Si", rows[1][5])
}
