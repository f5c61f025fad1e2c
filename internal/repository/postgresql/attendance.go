package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

const eventColumns = `id, legajo, nombre, apellido, secretaria, lugar_trabajo, tipo, fecha, hora, token, created_at`

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var e attendance.Event
	err := row.Scan(
		&e.ID, &e.Legajo, &e.Nombre, &e.Apellido, &e.Secretaria,
		&e.LugarTrabajo, &e.Tipo, &e.Fecha, &e.Hora, &e.Token, &e.CreatedAt,
	)
	return e, err
}

// Create implements attendance.EventRepository.
func (r *eventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO asistencias (legajo, nombre, apellido, secretaria, lugar_trabajo, tipo, fecha, hora, token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		event.Legajo,
		event.Nombre,
		event.Apellido,
		event.Secretaria,
		event.LugarTrabajo,
		event.Tipo,
		event.Fecha,
		event.Hora,
		event.Token,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// GetLastByLegajo implements attendance.EventRepository.
func (r *eventRepository) GetLastByLegajo(ctx context.Context, legajo string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM asistencias
		WHERE legajo = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	e, err := scanEvent(q.QueryRow(ctx, query, legajo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No prior events
		}
		return nil, fmt.Errorf("failed to get last event by legajo: %w", err)
	}

	return &e, nil
}

// ListByFecha implements attendance.EventRepository.
func (r *eventRepository) ListByFecha(ctx context.Context, fecha string, area string, pageSize int, cursorID string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "fecha = $1"
	args := []interface{}{fecha}
	argIdx := 2

	if area != "" {
		baseWhere += fmt.Sprintf(" AND lugar_trabajo = $%d", argIdx)
		args = append(args, area)
		argIdx++
	}
	if cursorID != "" {
		baseWhere += fmt.Sprintf(` AND (hora, id) < (SELECT hora, id FROM asistencias WHERE id = $%d)`, argIdx)
		args = append(args, cursorID)
		argIdx++
	}

	if pageSize <= 0 {
		pageSize = 50
	}
	args = append(args, pageSize)

	query := fmt.Sprintf(
		`SELECT %s FROM asistencias WHERE %s ORDER BY hora DESC, id DESC LIMIT $%d`,
		eventColumns, baseWhere, argIdx,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by fecha: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// ListAll implements attendance.EventRepository. The report layer filters
// this set in memory; substring matching is not pushed down on purpose.
func (r *eventRepository) ListAll(ctx context.Context) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM asistencias`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// ListPage implements attendance.EventRepository.
func (r *eventRepository) ListPage(ctx context.Context, area string, pageSize int, cursorID string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if area != "" {
		baseWhere += fmt.Sprintf(" AND lugar_trabajo = $%d", argIdx)
		args = append(args, area)
		argIdx++
	}
	if cursorID != "" {
		baseWhere += fmt.Sprintf(` AND (created_at, id) < (SELECT created_at, id FROM asistencias WHERE id = $%d)`, argIdx)
		args = append(args, cursorID)
		argIdx++
	}

	if pageSize <= 0 {
		pageSize = 200
	}
	args = append(args, pageSize)

	query := fmt.Sprintf(
		`SELECT %s FROM asistencias WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d`,
		eventColumns, baseWhere, argIdx,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event page: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]attendance.Event, error) {
	var events []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}
