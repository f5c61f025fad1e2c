package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/database"
)

type tokenRepository struct {
	db *database.DB
}

// Create implements token.TokenRepository.
func (r *tokenRepository) Create(ctx context.Context, t token.Token) (token.Token, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tokens (token, area, expires_at, used, disabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		t.Value,
		t.Area,
		t.ExpiresAt,
		t.Used,
		t.Disabled,
	).Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		return token.Token{}, fmt.Errorf("failed to create token: %w", err)
	}

	return t, nil
}

// GetByValue implements token.TokenRepository.
func (r *tokenRepository) GetByValue(ctx context.Context, value string) (token.Token, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, token, area, expires_at, used, disabled, created_at
		FROM tokens
		WHERE token = $1
	`

	var t token.Token
	err := q.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.Value, &t.Area, &t.ExpiresAt, &t.Used, &t.Disabled, &t.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return token.Token{}, token.ErrTokenNotFound
		}
		return token.Token{}, fmt.Errorf("failed to get token by value: %w", err)
	}

	return t, nil
}

// MarkUsedIfExpired implements token.TokenRepository. The expiry check and
// the flag write happen in one statement so concurrent validations cannot
// interleave between them.
func (r *tokenRepository) MarkUsedIfExpired(ctx context.Context, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tokens
		SET used = TRUE
		WHERE token = $1
		  AND used = FALSE
		  AND NOW() > expires_at
	`

	if _, err := q.Exec(ctx, query, value); err != nil {
		return fmt.Errorf("failed to mark token used: %w", err)
	}

	return nil
}

// Disable implements token.TokenRepository.
func (r *tokenRepository) Disable(ctx context.Context, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE tokens SET disabled = TRUE WHERE token = $1`

	commandTag, err := q.Exec(ctx, query, value)
	if err != nil {
		return fmt.Errorf("failed to disable token: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return token.ErrTokenNotFound
	}

	return nil
}

// SweepExpired implements token.TokenRepository.
func (r *tokenRepository) SweepExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tokens
		SET used = TRUE
		WHERE used = FALSE
		  AND NOW() > expires_at
	`

	commandTag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired tokens: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func NewTokenRepository(db *database.DB) token.TokenRepository {
	return &tokenRepository{db: db}
}
