package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `id, legajo, nombre, apellido, lugar_trabajo, secretaria, horario, rol, created_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Legajo, &emp.Nombre, &emp.Apellido,
		&emp.LugarTrabajo, &emp.Secretaria, &emp.Horario, &emp.Rol, &emp.CreatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO empleados (legajo, nombre, apellido, lugar_trabajo, secretaria, horario, rol)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	rol := emp.Rol
	if rol == "" {
		rol = "empleado"
	}

	err := q.QueryRow(ctx, query,
		emp.Legajo,
		emp.Nombre,
		emp.Apellido,
		emp.LugarTrabajo,
		emp.Secretaria,
		emp.Horario,
		rol,
	).Scan(&emp.ID, &emp.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrLegajoExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	emp.Rol = rol
	return emp, nil
}

// GetByLegajo implements employee.EmployeeRepository.
func (r *employeeRepository) GetByLegajo(ctx context.Context, legajo string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM empleados WHERE legajo = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, legajo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by legajo: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM empleados ORDER BY legajo`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListByLugarTrabajo implements employee.EmployeeRepository.
func (r *employeeRepository) ListByLugarTrabajo(ctx context.Context, lugar string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM empleados WHERE lugar_trabajo = $1 ORDER BY legajo`

	rows, err := q.Query(ctx, query, lugar)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by lugar_trabajo: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListPage implements employee.EmployeeRepository.
func (r *employeeRepository) ListPage(ctx context.Context, lugar string, pageSize int, cursorLegajo string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if lugar != "" {
		baseWhere += fmt.Sprintf(" AND lugar_trabajo = $%d", argIdx)
		args = append(args, lugar)
		argIdx++
	}
	if cursorLegajo != "" {
		baseWhere += fmt.Sprintf(" AND legajo > $%d", argIdx)
		args = append(args, cursorLegajo)
		argIdx++
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	args = append(args, pageSize)

	query := fmt.Sprintf(
		`SELECT %s FROM empleados WHERE %s ORDER BY legajo LIMIT $%d`,
		employeeColumns, baseWhere, argIdx,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee page: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
