package token

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/qr"
)

const valueCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const valueRandomLen = 8

type TokenServiceImpl struct {
	token.TokenRepository
	qrGen    *qr.Generator
	validity time.Duration
}

func NewTokenService(tokenRepository token.TokenRepository, qrGen *qr.Generator, validity time.Duration) token.TokenService {
	return &TokenServiceImpl{
		TokenRepository: tokenRepository,
		qrGen:           qrGen,
		validity:        validity,
	}
}

// newValue builds a token value: eight random uppercase characters plus a
// base-36 millisecond timestamp, joined by a dash. The timestamp suffix
// makes collisions across issuances practically impossible.
func newValue(now time.Time) (string, error) {
	buf := make([]byte, valueRandomLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	var b strings.Builder
	for _, c := range buf {
		b.WriteByte(valueCharset[int(c)%len(valueCharset)])
	}

	suffix := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return b.String() + "-" + suffix, nil
}

// Generate implements token.TokenService.
func (s *TokenServiceImpl) Generate(ctx context.Context, area string) (token.GeneratedToken, error) {
	now := time.Now()

	value, err := newValue(now)
	if err != nil {
		return token.GeneratedToken{}, err
	}

	created, err := s.TokenRepository.Create(ctx, token.Token{
		Value:     value,
		Area:      area,
		ExpiresAt: now.Add(s.validity),
	})
	if err != nil {
		return token.GeneratedToken{}, err
	}

	link := s.qrGen.ScanLink(created.Value, created.Area)

	return token.GeneratedToken{
		Token:     created,
		Value:     created.Value,
		Area:      created.Area,
		ExpiresAt: created.ExpiresAt.Format(time.RFC3339),
		ScanLink:  link,
		ImageURL:  s.qrGen.ImageURL(link),
	}, nil
}

// Validate implements token.TokenService.
func (s *TokenServiceImpl) Validate(ctx context.Context, value string) (token.Token, error) {
	t, err := s.TokenRepository.GetByValue(ctx, value)
	if err != nil {
		return token.Token{}, err
	}

	// Expiry wins over the disabled flag: an expired token always reports
	// expired, and the used flag still gets written
	if t.Expired(time.Now()) {
		// Best-effort: the sweeper catches anything this misses, and the
		// caller gets the same rejection either way
		if err := s.TokenRepository.MarkUsedIfExpired(ctx, value); err != nil {
			slog.Warn("Failed to mark expired token used", "error", err)
		}
		return token.Token{}, token.ErrTokenExpired
	}

	if t.Disabled {
		return token.Token{}, token.ErrTokenDisabled
	}

	return t, nil
}

// Revoke implements token.TokenService.
func (s *TokenServiceImpl) Revoke(ctx context.Context, value string) error {
	return s.TokenRepository.Disable(ctx, value)
}

// RenderPNG implements token.TokenService.
func (s *TokenServiceImpl) RenderPNG(ctx context.Context, value string) ([]byte, error) {
	t, err := s.Validate(ctx, value)
	if err != nil {
		return nil, err
	}

	return s.qrGen.RenderPNG(s.qrGen.ScanLink(t.Value, t.Area))
}
