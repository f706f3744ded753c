package workers

import (
	"context"
	"time"

	"avihire_backend/internal/logger"
	"avihire_backend/internal/repositories"
)

const cleanupInterval = 6 * time.Hour

// TokenCleanupWorker periodically removes expired refresh tokens.
type TokenCleanupWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenCleanupWorker(refreshTokenRepo repositories.RefreshTokenRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		refreshTokenRepo: refreshTokenRepo,
		interval:         cleanupInterval,
	}
}

// Start runs the cleanup loop until the context is cancelled.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			removed, err := w.refreshTokenRepo.CleanExpired()
			if err != nil {
				logger.Error("token cleanup failed", "error", err.Error())
			} else if removed > 0 {
				logger.Info("expired refresh tokens removed", "count", removed)
			}
		}
	}
}
