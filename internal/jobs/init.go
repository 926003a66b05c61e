package jobs

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// InitializeJobs starts all background maintenance jobs and returns them
// for manual triggering.
func InitializeJobs(ctx context.Context, db *gorm.DB) (*FlightStatusJob, *TokenPruneJob) {
	flightStatusJob := NewFlightStatusJob(db)
	tokenPruneJob := NewTokenPruneJob(db)

	go flightStatusJob.RunScheduled(ctx, 15*time.Minute)
	go tokenPruneJob.RunScheduled(ctx, 24*time.Hour)

	return flightStatusJob, tokenPruneJob
}
