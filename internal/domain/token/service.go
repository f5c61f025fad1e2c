package token

import "context"

// TokenService defines business logic for scan token issuance and checks.
type TokenService interface {
	// Generate issues a fresh token tied to an optional area tag
	Generate(ctx context.Context, area string) (GeneratedToken, error)

	// Validate looks a token up by value and checks expiry and disabled
	// state. The expired path marks the record used, best-effort.
	Validate(ctx context.Context, value string) (Token, error)

	// RenderPNG renders the scan QR for an issued token as a PNG
	RenderPNG(ctx context.Context, value string) ([]byte, error)

	// Revoke disables a token so it stops validating before its expiry
	Revoke(ctx context.Context, value string) error
}
