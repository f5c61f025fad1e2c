package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []attendance.Event
	nextID int
}

func (f *fakeEventRepo) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	f.nextID++
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) GetLastByLegajo(ctx context.Context, legajo string) (*attendance.Event, error) {
	var last *attendance.Event
	for i := range f.events {
		e := f.events[i]
		if e.Legajo != legajo {
			continue
		}
		if last == nil || e.CreatedAt.After(last.CreatedAt) {
			last = &f.events[i]
		}
	}
	return last, nil
}

func (f *fakeEventRepo) ListByFecha(ctx context.Context, fecha string, area string, pageSize int, cursorID string) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, e := range f.events {
		if e.Fecha == fecha && (area == "" || e.LugarTrabajo == area) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]attendance.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListPage(ctx context.Context, area string, pageSize int, cursorID string) ([]attendance.Event, error) {
	return f.events, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.Legajo] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByLegajo(ctx context.Context, legajo string) (employee.Employee, error) {
	emp, ok := f.employees[legajo]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByLugarTrabajo(ctx context.Context, lugar string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.LugarTrabajo == lugar {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListPage(ctx context.Context, lugar string, pageSize int, cursorLegajo string) ([]employee.Employee, error) {
	return f.List(ctx)
}

type fakeTokenService struct {
	validateErr error
	validated   []string
}

func (f *fakeTokenService) Generate(ctx context.Context, area string) (token.GeneratedToken, error) {
	return token.GeneratedToken{}, nil
}

func (f *fakeTokenService) Validate(ctx context.Context, value string) (token.Token, error) {
	f.validated = append(f.validated, value)
	if f.validateErr != nil {
		return token.Token{}, f.validateErr
	}
	return token.Token{Value: value, ExpiresAt: time.Now().Add(time.Minute)}, nil
}

func (f *fakeTokenService) RenderPNG(ctx context.Context, value string) ([]byte, error) {
	return nil, nil
}

func (f *fakeTokenService) Revoke(ctx context.Context, value string) error {
	return nil
}

func setupAttendanceTest() (*fakeEventRepo, *fakeEmployeeRepo, *fakeTokenService, attendance.AttendanceService) {
	eventRepo := &fakeEventRepo{}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"1234": {Legajo: "1234", Nombre: "Maria", Apellido: "Gomez", Secretaria: "Obras", LugarTrabajo: "Corralon"},
	}}
	tokenSvc := &fakeTokenService{}
	svc := NewAttendanceService(eventRepo, empRepo, tokenSvc)
	return eventRepo, empRepo, tokenSvc, svc
}

func TestAttendanceService_Register_FirstScanIsEntrada(t *testing.T) {
	_, _, _, svc := setupAttendanceTest()

	got, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234", Token: "TOK-1"})
	require.NoError(t, err)

	assert.Equal(t, "ENTRADA", got.Tipo)
	assert.Equal(t, "Maria", got.Empleado.Nombre)
	assert.Equal(t, "Corralon", got.Empleado.LugarTrabajo)
	assert.NotEmpty(t, got.Fecha)
	assert.NotEmpty(t, got.Hora)
}

func TestAttendanceService_Register_SameDayToggles(t *testing.T) {
	eventRepo, _, _, svc := setupAttendanceTest()

	first, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "ENTRADA", first.Tipo)

	second, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "SALIDA", second.Tipo)

	third, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "ENTRADA", third.Tipo)

	assert.Len(t, eventRepo.events, 3)
}

func TestAttendanceService_Register_PriorDayResetsToEntrada(t *testing.T) {
	eventRepo, _, _, svc := setupAttendanceTest()

	yesterday := time.Now().In(time.Local).AddDate(0, 0, -1)
	eventRepo.events = append(eventRepo.events, attendance.Event{
		ID:        "ev-old",
		Legajo:    "1234",
		Tipo:      attendance.TipoEntrada,
		Fecha:     yesterday.Format("02/01/2006"),
		CreatedAt: yesterday,
	})

	got, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "ENTRADA", got.Tipo)
}

func TestAttendanceService_Register_ExpiredTokenWritesNothing(t *testing.T) {
	eventRepo, _, tokenSvc, svc := setupAttendanceTest()
	tokenSvc.validateErr = token.ErrTokenExpired

	_, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234", Token: "OLD-1"})
	assert.ErrorIs(t, err, token.ErrTokenExpired)
	assert.Empty(t, eventRepo.events)
}

func TestAttendanceService_Register_UnknownLegajo(t *testing.T) {
	eventRepo, _, _, svc := setupAttendanceTest()

	_, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "9999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, eventRepo.events)
}

func TestAttendanceService_Register_EmptyLegajo(t *testing.T) {
	_, _, _, svc := setupAttendanceTest()

	_, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: ""})
	assert.Error(t, err)
}

func TestAttendanceService_Register_WithoutTokenSkipsValidation(t *testing.T) {
	_, _, tokenSvc, svc := setupAttendanceTest()

	_, err := svc.Register(context.Background(), attendance.RegisterRequest{Legajo: "1234"})
	require.NoError(t, err)
	assert.Empty(t, tokenSvc.validated)
}

func TestAttendanceService_ListToday(t *testing.T) {
	eventRepo, _, _, svc := setupAttendanceTest()

	now := time.Now().In(time.Local)
	today := now.Format("02/01/2006")
	yesterday := now.AddDate(0, 0, -1).Format("02/01/2006")

	eventRepo.events = []attendance.Event{
		{ID: "ev-1", Legajo: "1234", Fecha: today, LugarTrabajo: "Corralon", CreatedAt: now},
		{ID: "ev-2", Legajo: "1234", Fecha: yesterday, LugarTrabajo: "Corralon", CreatedAt: now.AddDate(0, 0, -1)},
	}

	got, cursor, err := svc.ListToday(context.Background(), "", 50, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
	assert.Empty(t, cursor)
}
