package absence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAbsenceRepo struct {
	records []absence.Absence
	nextID  int
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	f.nextID++
	a.ID = fmt.Sprintf("abs-%d", f.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAbsenceRepo) Update(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	for i := range f.records {
		if f.records[i].ID == a.ID {
			a.CreatedAt = f.records[i].CreatedAt
			a.UpdatedAt = time.Now()
			f.records[i] = a
			return a, nil
		}
	}
	return absence.Absence{}, absence.ErrAbsenceNotFound
}

func (f *fakeAbsenceRepo) GetByLegajoAndFecha(ctx context.Context, legajo, fecha string) (*absence.Absence, error) {
	for i := range f.records {
		if f.records[i].Legajo == legajo && f.records[i].Fecha == fecha {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAbsenceRepo) ListByArea(ctx context.Context, area string) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range f.records {
		if area == "" || (a.LugarTrabajo != nil && *a.LugarTrabajo == area) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) ExistsForFecha(ctx context.Context, legajo, fecha string) (bool, error) {
	a, _ := f.GetByLegajoAndFecha(ctx, legajo, fecha)
	return a != nil, nil
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
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByLugarTrabajo(ctx context.Context, lugar string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListPage(ctx context.Context, lugar string, pageSize int, cursorLegajo string) ([]employee.Employee, error) {
	return nil, nil
}

func setupAbsenceTest() (*fakeAbsenceRepo, absence.AbsenceService) {
	repo := &fakeAbsenceRepo{}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"1234": {Legajo: "1234", Nombre: "Maria", Apellido: "Gomez", Secretaria: "Obras", LugarTrabajo: "Corralon"},
	}}
	return repo, NewAbsenceService(repo, empRepo)
}

func TestAbsenceService_Upsert_CreatesRecord(t *testing.T) {
	repo, svc := setupAbsenceTest()

	got, err := svc.Upsert(context.Background(), absence.UpsertRequest{
		Legajo:        "1234",
		Fecha:         "2026-08-15",
		Justificativo: "Turno medico",
		Justificado:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "15/08/2026", got.Fecha)
	require.NotNil(t, got.Justificativo)
	assert.Equal(t, "Turno medico", *got.Justificativo)
	assert.True(t, got.Justificado)
	require.NotNil(t, got.Nombre)
	assert.Equal(t, "Maria", *got.Nombre)
	assert.Len(t, repo.records, 1)
}

func TestAbsenceService_Upsert_SecondCallUpdatesInPlace(t *testing.T) {
	repo, svc := setupAbsenceTest()

	first, err := svc.Upsert(context.Background(), absence.UpsertRequest{
		Legajo: "1234", Fecha: "15/08/2026", Justificativo: "Sin aviso", Justificado: false,
	})
	require.NoError(t, err)

	// Same day in the other accepted format must hit the same record
	second, err := svc.Upsert(context.Background(), absence.UpsertRequest{
		Legajo: "1234", Fecha: "2026-08-15", Justificativo: "Certificado presentado", Justificado: true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.records, 1)
	require.NotNil(t, repo.records[0].Justificativo)
	assert.Equal(t, "Certificado presentado", *repo.records[0].Justificativo)
	assert.True(t, repo.records[0].Justificado)
}

func TestAbsenceService_Upsert_UnknownLegajoStillStores(t *testing.T) {
	repo, svc := setupAbsenceTest()

	got, err := svc.Upsert(context.Background(), absence.UpsertRequest{
		Legajo: "9999", Fecha: "15/08/2026", Justificado: false,
	})
	require.NoError(t, err)

	assert.Nil(t, got.Nombre)
	assert.Len(t, repo.records, 1)
}

func TestAbsenceService_Upsert_InvalidFecha(t *testing.T) {
	_, svc := setupAbsenceTest()

	_, err := svc.Upsert(context.Background(), absence.UpsertRequest{
		Legajo: "1234", Fecha: "15-08-2026",
	})
	assert.ErrorIs(t, err, absence.ErrInvalidFecha)
}

func TestAbsenceService_ListByRange_HastaIsInclusive(t *testing.T) {
	repo, svc := setupAbsenceTest()

	for _, fecha := range []string{"14/08/2026", "15/08/2026", "16/08/2026"} {
		_, err := svc.Upsert(context.Background(), absence.UpsertRequest{Legajo: "1234", Fecha: fecha})
		require.NoError(t, err)
	}
	require.Len(t, repo.records, 3)

	got, err := svc.ListByRange(context.Background(), "2026-08-14", "2026-08-15", "")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first
	assert.Equal(t, "15/08/2026", got[0].Fecha)
	assert.Equal(t, "14/08/2026", got[1].Fecha)
}

func TestAbsenceService_ListByRange_AreaFilter(t *testing.T) {
	repo, svc := setupAbsenceTest()

	corralon := "Corralon"
	palacio := "Palacio"
	repo.records = []absence.Absence{
		{ID: "abs-1", Legajo: "1234", Fecha: "15/08/2026", LugarTrabajo: &corralon},
		{ID: "abs-2", Legajo: "5678", Fecha: "15/08/2026", LugarTrabajo: &palacio},
	}

	got, err := svc.ListByRange(context.Background(), "", "", "Corralon")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1234", got[0].Legajo)
}
