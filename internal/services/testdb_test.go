package services

import (
	"testing"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, username string) *gormModels.User {
	t.Helper()

	user := &gormModels.User{
		Email:          email,
		Username:       username,
		HashedPassword: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}
