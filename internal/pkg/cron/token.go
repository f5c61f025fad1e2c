package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/token"
)

// TokenJobs closes out expired scan tokens that no validation attempt
// happened to touch.
type TokenJobs struct {
	tokenRepo token.TokenRepository
}

func NewTokenJobs(tokenRepo token.TokenRepository) *TokenJobs {
	return &TokenJobs{tokenRepo: tokenRepo}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_expired_tokens", 1*time.Minute, j.SweepExpiredTokens)
}

func (j *TokenJobs) SweepExpiredTokens(ctx context.Context) error {
	swept, err := j.tokenRepo.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep expired tokens: %w", err)
	}

	if swept > 0 {
		slog.Info("Cron: Swept expired tokens", "count", swept)
	}

	return nil
}
