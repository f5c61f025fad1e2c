package token

import "context"

// TokenRepository defines data access methods for scan tokens.
type TokenRepository interface {
	// Create inserts a new token
	Create(ctx context.Context, t Token) (Token, error)

	// GetByValue retrieves a token by its exact value
	GetByValue(ctx context.Context, value string) (Token, error)

	// MarkUsedIfExpired sets used=true only when the token is already past
	// its expiry, as a single conditional update
	MarkUsedIfExpired(ctx context.Context, value string) error

	// Disable revokes a token explicitly
	Disable(ctx context.Context, value string) error

	// SweepExpired marks every expired, still-unused token as used and
	// returns how many rows changed
	SweepExpired(ctx context.Context) (int64, error)
}
