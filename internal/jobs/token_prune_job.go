package jobs

import (
	"context"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/logging"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"

	"gorm.io/gorm"
)

// TokenPruneJob deletes refresh tokens that are expired or revoked. The
// service layer prunes opportunistically on refresh; this catches tokens
// belonging to users who never come back.
type TokenPruneJob struct {
	db    *gorm.DB
	nowFn func() time.Time
}

func NewTokenPruneJob(db *gorm.DB) *TokenPruneJob {
	return &TokenPruneJob{db: db, nowFn: time.Now}
}

func (j *TokenPruneJob) Run(ctx context.Context) error {
	now := j.nowFn().UTC()

	res := j.db.WithContext(ctx).
		Where("expires_at < ? OR revoked = ?", now, true).
		Delete(&gormModels.RefreshToken{})

	if res.Error != nil {
		logging.Error("token prune failed", "error", res.Error.Error())
		return res.Error
	}
	if res.RowsAffected > 0 {
		logging.Info("refresh tokens pruned", "count", res.RowsAffected)
	}
	return nil
}

// RunScheduled runs the prune on a fixed interval until ctx is canceled.
func (j *TokenPruneJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Warn("scheduled token prune errored", "error", err.Error())
			}
		}
	}
}
