package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

const absenceColumns = `id, legajo, fecha, justificativo, justificado, nombre, apellido, secretaria, lugar_trabajo, created_at, updated_at`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(
		&a.ID, &a.Legajo, &a.Fecha, &a.Justificativo, &a.Justificado,
		&a.Nombre, &a.Apellido, &a.Secretaria, &a.LugarTrabajo,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepository) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ausencias (legajo, fecha, justificativo, justificado, nombre, apellido, secretaria, lugar_trabajo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.Legajo,
		a.Fecha,
		a.Justificativo,
		a.Justificado,
		a.Nombre,
		a.Apellido,
		a.Secretaria,
		a.LugarTrabajo,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return a, nil
}

// Update implements absence.AbsenceRepository.
func (r *absenceRepository) Update(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE ausencias
		SET justificativo = $1,
		    justificado = $2,
		    nombre = $3,
		    apellido = $4,
		    secretaria = $5,
		    lugar_trabajo = $6,
		    updated_at = $7
		WHERE id = $8
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.Justificativo,
		a.Justificado,
		a.Nombre,
		a.Apellido,
		a.Secretaria,
		a.LugarTrabajo,
		time.Now(),
		a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, fmt.Errorf("failed to update absence: %w", err)
	}

	return a, nil
}

// GetByLegajoAndFecha implements absence.AbsenceRepository.
func (r *absenceRepository) GetByLegajoAndFecha(ctx context.Context, legajo, fecha string) (*absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM ausencias WHERE legajo = $1 AND fecha = $2 LIMIT 1`

	a, err := scanAbsence(q.QueryRow(ctx, query, legajo, fecha))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing absence
		}
		return nil, fmt.Errorf("failed to get absence by legajo and fecha: %w", err)
	}

	return &a, nil
}

// ListByArea implements absence.AbsenceRepository.
func (r *absenceRepository) ListByArea(ctx context.Context, area string) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM ausencias`
	args := []interface{}{}
	if area != "" {
		query += ` WHERE lugar_trabajo = $1`
		args = append(args, area)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return absences, nil
}

// ExistsForFecha implements absence.AbsenceRepository.
func (r *absenceRepository) ExistsForFecha(ctx context.Context, legajo, fecha string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM ausencias WHERE legajo = $1 AND fecha = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, legajo, fecha).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check absence existence: %w", err)
	}

	return exists, nil
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}
