package token

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
	"github.com/munidigital/asistencias-backend-go/internal/pkg/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenRepo struct {
	tokens     map[string]token.Token
	markCalls  int
	markErr    error
	sweepCount int64
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]token.Token)}
}

func (f *fakeTokenRepo) Create(ctx context.Context, t token.Token) (token.Token, error) {
	t.ID = "tok-1"
	t.CreatedAt = time.Now()
	f.tokens[t.Value] = t
	return t, nil
}

func (f *fakeTokenRepo) GetByValue(ctx context.Context, value string) (token.Token, error) {
	t, ok := f.tokens[value]
	if !ok {
		return token.Token{}, token.ErrTokenNotFound
	}
	return t, nil
}

func (f *fakeTokenRepo) MarkUsedIfExpired(ctx context.Context, value string) error {
	f.markCalls++
	if f.markErr != nil {
		return f.markErr
	}
	if t, ok := f.tokens[value]; ok && time.Now().After(t.ExpiresAt) {
		t.Used = true
		f.tokens[value] = t
	}
	return nil
}

func (f *fakeTokenRepo) Disable(ctx context.Context, value string) error {
	t, ok := f.tokens[value]
	if !ok {
		return token.ErrTokenNotFound
	}
	t.Disabled = true
	f.tokens[value] = t
	return nil
}

func (f *fakeTokenRepo) SweepExpired(ctx context.Context) (int64, error) {
	return f.sweepCount, nil
}

func newTestService(repo *fakeTokenRepo) token.TokenService {
	gen := qr.NewGenerator("http://localhost:5173", "https://quickchart.io", 300)
	return NewTokenService(repo, gen, 2*time.Minute)
}

func TestTokenService_Generate(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	before := time.Now()
	got, err := svc.Generate(context.Background(), "Corralon")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}-[A-Z0-9]+$`), got.Value)
	assert.Equal(t, "Corralon", got.Area)
	assert.Contains(t, got.ScanLink, "token="+got.Value)
	assert.Contains(t, got.ScanLink, "area=Corralon")
	assert.Contains(t, got.ImageURL, "quickchart.io/qr")

	expiresAt, err := time.Parse(time.RFC3339, got.ExpiresAt)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(2*time.Minute), expiresAt, 5*time.Second)
}

func TestTokenService_Generate_UniqueValues(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		got, err := svc.Generate(context.Background(), "")
		require.NoError(t, err)
		assert.False(t, seen[got.Value], "duplicate token value %s", got.Value)
		seen[got.Value] = true
	}
}

func TestTokenService_Validate_Live(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["LIVE-1"] = token.Token{Value: "LIVE-1", ExpiresAt: time.Now().Add(time.Minute)}
	svc := newTestService(repo)

	got, err := svc.Validate(context.Background(), "LIVE-1")
	require.NoError(t, err)
	assert.Equal(t, "LIVE-1", got.Value)
	assert.Zero(t, repo.markCalls)
}

func TestTokenService_Validate_Expired(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["OLD-1"] = token.Token{Value: "OLD-1", ExpiresAt: time.Now().Add(-time.Minute)}
	svc := newTestService(repo)

	_, err := svc.Validate(context.Background(), "OLD-1")
	assert.ErrorIs(t, err, token.ErrTokenExpired)
	assert.Equal(t, 1, repo.markCalls)
	assert.True(t, repo.tokens["OLD-1"].Used)

	// Repeat rejection stays stable once the record is marked
	_, err = svc.Validate(context.Background(), "OLD-1")
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestTokenService_Validate_Expired_MarkFailureStillRejects(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["OLD-2"] = token.Token{Value: "OLD-2", ExpiresAt: time.Now().Add(-time.Minute)}
	repo.markErr = errors.New("connection reset")
	svc := newTestService(repo)

	_, err := svc.Validate(context.Background(), "OLD-2")
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestTokenService_Validate_Disabled(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["DIS-1"] = token.Token{Value: "DIS-1", ExpiresAt: time.Now().Add(time.Minute), Disabled: true}
	svc := newTestService(repo)

	_, err := svc.Validate(context.Background(), "DIS-1")
	assert.ErrorIs(t, err, token.ErrTokenDisabled)
}

func TestTokenService_Validate_ExpiredAndDisabled(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["OLD-3"] = token.Token{Value: "OLD-3", ExpiresAt: time.Now().Add(-time.Minute), Disabled: true}
	svc := newTestService(repo)

	// Expiry wins: the token still gets marked used even when disabled
	_, err := svc.Validate(context.Background(), "OLD-3")
	assert.ErrorIs(t, err, token.ErrTokenExpired)
	assert.Equal(t, 1, repo.markCalls)
	assert.True(t, repo.tokens["OLD-3"].Used)
}

func TestTokenService_Revoke(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["LIVE-3"] = token.Token{Value: "LIVE-3", ExpiresAt: time.Now().Add(time.Minute)}
	svc := newTestService(repo)

	require.NoError(t, svc.Revoke(context.Background(), "LIVE-3"))

	_, err := svc.Validate(context.Background(), "LIVE-3")
	assert.ErrorIs(t, err, token.ErrTokenDisabled)
}

func TestTokenService_Revoke_NotFound(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	err := svc.Revoke(context.Background(), "NOPE")
	assert.ErrorIs(t, err, token.ErrTokenNotFound)
}

func TestTokenService_Validate_NotFound(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	_, err := svc.Validate(context.Background(), "NOPE")
	assert.ErrorIs(t, err, token.ErrTokenNotFound)
}

func TestTokenService_RenderPNG(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens["LIVE-2"] = token.Token{Value: "LIVE-2", ExpiresAt: time.Now().Add(time.Minute)}
	svc := newTestService(repo)

	png, err := svc.RenderPNG(context.Background(), "LIVE-2")
	require.NoError(t, err)
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
