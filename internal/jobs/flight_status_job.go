package jobs

import (
	"context"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/logging"

	"gorm.io/gorm"
)

// FlightStatusJob sweeps stored flights whose arrival time has passed and
// flips their is_past flag, so list filters keep working without a refresh
// call from the client.
type FlightStatusJob struct {
	db    *gorm.DB
	nowFn func() time.Time
}

func NewFlightStatusJob(db *gorm.DB) *FlightStatusJob {
	return &FlightStatusJob{db: db, nowFn: time.Now}
}

// Run marks flights as past using the same rule applied at ingest: an
// actual arrival before now, or a scheduled arrival more than two hours ago
// when no actual arrival was ever reported.
func (j *FlightStatusJob) Run(ctx context.Context) error {
	now := j.nowFn().UTC()
	cutoff := now.Add(-2 * time.Hour)

	res := j.db.WithContext(ctx).
		Table("flights").
		Where("is_past = ?", false).
		Where("(actual_arrival IS NOT NULL AND actual_arrival < ?) OR (actual_arrival IS NULL AND scheduled_arrival IS NOT NULL AND scheduled_arrival < ?)", now, cutoff).
		Update("is_past", true)

	if res.Error != nil {
		logging.Error("flight status sweep failed", "error", res.Error.Error())
		return res.Error
	}
	if res.RowsAffected > 0 {
		logging.Info("flight status sweep", "flights_marked_past", res.RowsAffected)
	}
	return nil
}

// RunScheduled runs the sweep on a fixed interval until ctx is canceled.
func (j *FlightStatusJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Warn("scheduled flight status sweep errored", "error", err.Error())
			}
		}
	}
}
