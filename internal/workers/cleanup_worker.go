package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
)

// CleanupWorker periodically removes expired refresh tokens so the table
// does not grow unbounded.
type CleanupWorker struct {
	db               *gorm.DB
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewCleanupWorker(db *gorm.DB, refreshTokenRepo repositories.RefreshTokenRepository) *CleanupWorker {
	return &CleanupWorker{
		db:               db,
		refreshTokenRepo: refreshTokenRepo,
		interval:         time.Hour,
	}
}

func (w *CleanupWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *CleanupWorker) sweep() {
	deleted, err := w.refreshTokenRepo.DeleteExpired(w.db, time.Now())
	if err != nil {
		logger.Error("refresh token cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("expired refresh tokens removed", "count", deleted)
	}
}
