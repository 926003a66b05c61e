package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// GymRepository handles workouts, exercises, sets and body measurements.
type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{db: db}
}

// ── Workouts ──

// FindActiveWorkout returns the user's workout with no end time, if any.
// This is the check half of the check-then-insert "one active workout"
// invariant; it is not race-safe under concurrent starts.
func (r *GymRepository) FindActiveWorkout(ctx context.Context, userID uint) (*gormModels.Workout, error) {
	var workout gormModels.Workout
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND ended_at IS NULL", userID).
		First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check active workout: %w", err)
	}
	return &workout, nil
}

func (r *GymRepository) CreateWorkout(ctx context.Context, workout *gormModels.Workout) error {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

func (r *GymRepository) GetWorkout(ctx context.Context, userID, workoutID uint) (*gormModels.Workout, error) {
	var workout gormModels.Workout
	err := r.db.WithContext(ctx).
		Preload("MuscleGroups").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("workout %d not found", workoutID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workout: %w", err)
	}
	return &workout, nil
}

// GetWorkoutWithDetails preloads exercises and their sets.
func (r *GymRepository) GetWorkoutWithDetails(ctx context.Context, userID, workoutID uint) (*gormModels.Workout, error) {
	var workout gormModels.Workout
	err := r.db.WithContext(ctx).
		Preload("MuscleGroups").
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_number ASC") }).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("workout %d not found", workoutID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workout: %w", err)
	}
	return &workout, nil
}

func (r *GymRepository) ListWorkouts(ctx context.Context, userID uint, limit, offset int) ([]gormModels.Workout, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var workouts []gormModels.Workout
	err := r.db.WithContext(ctx).
		Preload("MuscleGroups").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&workouts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

func (r *GymRepository) SaveWorkout(ctx context.Context, workout *gormModels.Workout) error {
	if err := r.db.WithContext(ctx).Save(workout).Error; err != nil {
		return fmt.Errorf("failed to save workout: %w", err)
	}
	return nil
}

func (r *GymRepository) DeleteWorkout(ctx context.Context, userID, workoutID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&gormModels.Workout{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("workout %d not found", workoutID)
	}
	return nil
}

// CountExercisesAndSets returns the totals stored on the workout at end time.
func (r *GymRepository) CountExercisesAndSets(ctx context.Context, workoutID uint) (int, int, error) {
	var exerciseCount int64
	if err := r.db.WithContext(ctx).
		Model(&gormModels.Exercise{}).
		Where("workout_id = ?", workoutID).
		Count(&exerciseCount).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	var setCount int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.ExerciseSet{}).
		Joins("JOIN exercises ON exercises.id = exercise_sets.exercise_id").
		Where("exercises.workout_id = ?", workoutID).
		Count(&setCount).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count sets: %w", err)
	}

	return int(exerciseCount), int(setCount), nil
}

// ── Exercises ──

func (r *GymRepository) CreateExercise(ctx context.Context, exercise *gormModels.Exercise) error {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

func (r *GymRepository) GetExercise(ctx context.Context, exerciseID uint) (*gormModels.Exercise, error) {
	var exercise gormModels.Exercise
	err := r.db.WithContext(ctx).Preload("Sets").First(&exercise, exerciseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("exercise %d not found", exerciseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exercise: %w", err)
	}
	return &exercise, nil
}

func (r *GymRepository) ListExercises(ctx context.Context, workoutID uint) ([]gormModels.Exercise, error) {
	var exercises []gormModels.Exercise
	err := r.db.WithContext(ctx).
		Preload("Sets").
		Where("workout_id = ?", workoutID).
		Order("position ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (r *GymRepository) SaveExercise(ctx context.Context, exercise *gormModels.Exercise) error {
	if err := r.db.WithContext(ctx).Save(exercise).Error; err != nil {
		return fmt.Errorf("failed to save exercise: %w", err)
	}
	return nil
}

func (r *GymRepository) DeleteExercise(ctx context.Context, exerciseID uint) error {
	return r.db.WithContext(ctx).Delete(&gormModels.Exercise{}, exerciseID).Error
}

// ── Sets ──

func (r *GymRepository) CreateSet(ctx context.Context, set *gormModels.ExerciseSet) error {
	if err := r.db.WithContext(ctx).Create(set).Error; err != nil {
		return fmt.Errorf("failed to create set: %w", err)
	}
	return nil
}

func (r *GymRepository) GetSet(ctx context.Context, setID uint) (*gormModels.ExerciseSet, error) {
	var set gormModels.ExerciseSet
	err := r.db.WithContext(ctx).First(&set, setID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("set %d not found", setID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch set: %w", err)
	}
	return &set, nil
}

func (r *GymRepository) SaveSet(ctx context.Context, set *gormModels.ExerciseSet) error {
	if err := r.db.WithContext(ctx).Save(set).Error; err != nil {
		return fmt.Errorf("failed to save set: %w", err)
	}
	return nil
}

func (r *GymRepository) DeleteSet(ctx context.Context, setID uint) error {
	return r.db.WithContext(ctx).Delete(&gormModels.ExerciseSet{}, setID).Error
}

// ── Body measurements ──

func (r *GymRepository) CreateMeasurement(ctx context.Context, m *gormModels.BodyMeasurement) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create body measurement: %w", err)
	}
	return nil
}

func (r *GymRepository) GetMeasurement(ctx context.Context, userID, measurementID uint) (*gormModels.BodyMeasurement, error) {
	var m gormModels.BodyMeasurement
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", measurementID, userID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("body measurement %d not found", measurementID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch body measurement: %w", err)
	}
	return &m, nil
}

func (r *GymRepository) ListMeasurements(ctx context.Context, userID uint, limit int) ([]gormModels.BodyMeasurement, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var measurements []gormModels.BodyMeasurement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("measured_at DESC").
		Limit(limit).
		Find(&measurements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list body measurements: %w", err)
	}
	return measurements, nil
}

func (r *GymRepository) SaveMeasurement(ctx context.Context, m *gormModels.BodyMeasurement) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to save body measurement: %w", err)
	}
	return nil
}

func (r *GymRepository) DeleteMeasurement(ctx context.Context, userID, measurementID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", measurementID, userID).
		Delete(&gormModels.BodyMeasurement{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete body measurement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("body measurement %d not found", measurementID)
	}
	return nil
}
