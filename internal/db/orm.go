package db

import (
	"fmt"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every tracked entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.User{},
		&gormModels.RefreshToken{},
		&gormModels.Expense{},
		&gormModels.Flight{},
		&gormModels.Product{},
		&gormModels.DiaryEntry{},
		&gormModels.UserGoal{},
		&gormModels.Workout{},
		&gormModels.WorkoutMuscleGroup{},
		&gormModels.Exercise{},
		&gormModels.ExerciseSet{},
		&gormModels.BodyMeasurement{},
		&gormModels.Trip{},
		&gormModels.Album{},
		&gormModels.Photo{},
		&gormModels.Activity{},
	)
}
