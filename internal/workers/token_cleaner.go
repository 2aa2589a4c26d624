package workers

import (
	"context"
	"time"

	"jobportal_backend/internal/logger"

	"gorm.io/gorm"
)

// tokenStore is the slice of the user repository the cleaner needs.
type tokenStore interface {
	CleanExpiredRefreshTokens(db *gorm.DB) error
}

// TokenCleaner periodically removes expired refresh tokens so the table does
// not grow without bound.
type TokenCleaner struct {
	db       *gorm.DB
	store    tokenStore
	interval time.Duration
}

func NewTokenCleaner(db *gorm.DB, store tokenStore, interval time.Duration) *TokenCleaner {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenCleaner{
		db:       db,
		store:    store,
		interval: interval,
	}
}

// Start runs the cleanup loop until ctx is cancelled. One sweep runs
// immediately, then one per interval.
func (c *TokenCleaner) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.sweep()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *TokenCleaner) sweep() {
	if err := c.store.CleanExpiredRefreshTokens(c.db); err != nil {
		logger.Error("Refresh token cleanup failed", "error", err)
	}
}
