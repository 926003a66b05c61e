package services

import (
	"context"
	"testing"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
)

func newGymService(t *testing.T) (*GymService, uint, uint) {
	t.Helper()
	db := setupTestDB(t)
	owner := createTestUser(t, db, "gym@test.com", "gym")
	other := createTestUser(t, db, "other@test.com", "other")
	return NewGymService(repositories.NewGymRepository(db)), owner.ID, other.ID
}

func TestGymService_StartWorkout_RejectsSecondActive(t *testing.T) {
	svc, userID, _ := newGymService(t)
	ctx := context.Background()

	first, err := svc.StartWorkout(ctx, userID, dtos.StartWorkoutRequest{MuscleGroups: []string{"chest", "triceps"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(first.MuscleGroups) != 2 {
		t.Errorf("Expected 2 muscle groups, got %v", first.MuscleGroups)
	}

	_, err = svc.StartWorkout(ctx, userID, dtos.StartWorkoutRequest{})
	if !apperrors.IsKind(err, apperrors.KindAlreadyActive) {
		t.Errorf("Expected already-active error, got %v", err)
	}

	// Ending the first workout unblocks a new one.
	if _, err := svc.EndWorkout(ctx, userID, first.ID); err != nil {
		t.Fatalf("Expected no error ending workout, got %v", err)
	}
	if _, err := svc.StartWorkout(ctx, userID, dtos.StartWorkoutRequest{}); err != nil {
		t.Errorf("Expected new workout after ending previous, got %v", err)
	}
}

func TestGymService_EndWorkout_FreezesDurationAndTotals(t *testing.T) {
	svc, userID, _ := newGymService(t)
	ctx := context.Background()

	started := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)
	svc.nowFn = func() time.Time { return started }

	workout, err := svc.StartWorkout(ctx, userID, dtos.StartWorkoutRequest{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	exercise, err := svc.AddExercise(ctx, userID, workout.ID, dtos.CreateExerciseRequest{Name: "Bench press"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.AddSet(ctx, userID, workout.ID, exercise.ID, dtos.CreateSetRequest{Reps: intPtr(8)}); err != nil {
			t.Fatalf("Expected no error adding set, got %v", err)
		}
	}

	svc.nowFn = func() time.Time { return started.Add(55 * time.Minute) }
	ended, err := svc.EndWorkout(ctx, userID, workout.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if ended.DurationMinutes == nil || *ended.DurationMinutes != 55 {
		t.Errorf("Expected duration 55, got %v", ended.DurationMinutes)
	}
	if ended.TotalExercises != 1 || ended.TotalSets != 3 {
		t.Errorf("Expected 1 exercise and 3 sets, got %d and %d", ended.TotalExercises, ended.TotalSets)
	}

	_, err = svc.EndWorkout(ctx, userID, workout.ID)
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("Expected conflict ending twice, got %v", err)
	}
}

func TestGymService_AddSet_AutoNumbers(t *testing.T) {
	svc, userID, _ := newGymService(t)
	ctx := context.Background()

	workout, _ := svc.StartWorkout(ctx, userID, dtos.StartWorkoutRequest{})
	exercise, err := svc.AddExercise(ctx, userID, workout.ID, dtos.CreateExerciseRequest{Name: "Squat"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s1, err := svc.AddSet(ctx, userID, workout.ID, exercise.ID, dtos.CreateSetRequest{Reps: intPtr(5)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	s2, err := svc.AddSet(ctx, userID, workout.ID, exercise.ID, dtos.CreateSetRequest{Reps: intPtr(5)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s1.SetNumber != 1 || s2.SetNumber != 2 {
		t.Errorf("Expected set numbers 1 and 2, got %d and %d", s1.SetNumber, s2.SetNumber)
	}
}

func TestGymService_OwnershipIsolation(t *testing.T) {
	svc, owner, intruder := newGymService(t)
	ctx := context.Background()

	workout, err := svc.StartWorkout(ctx, owner, dtos.StartWorkoutRequest{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	exercise, err := svc.AddExercise(ctx, owner, workout.ID, dtos.CreateExerciseRequest{Name: "Deadlift"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Another user sees a 404, never a hint that the workout exists.
	if _, err := svc.GetWorkout(ctx, intruder, workout.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found for foreign workout, got %v", err)
	}
	if _, err := svc.AddSet(ctx, intruder, workout.ID, exercise.ID, dtos.CreateSetRequest{Reps: intPtr(1)}); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found adding set to foreign workout, got %v", err)
	}

	// An exercise reached through the wrong workout is also a 404.
	otherWorkout, err := svc.StartWorkout(ctx, intruder, dtos.StartWorkoutRequest{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.UpdateExercise(ctx, intruder, otherWorkout.ID, exercise.ID, dtos.UpdateExerciseRequest{}); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found for exercise outside the workout, got %v", err)
	}
}

func TestGymService_Measurements(t *testing.T) {
	svc, userID, other := newGymService(t)
	ctx := context.Background()

	weight := 82.5
	created, err := svc.CreateMeasurement(ctx, userID, dtos.CreateMeasurementRequest{
		MeasuredAt: "2024-06-10",
		WeightKg:   &weight,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.WeightKg == nil || *created.WeightKg != 82.5 {
		t.Errorf("Expected weight 82.5, got %v", created.WeightKg)
	}

	list, err := svc.ListMeasurements(ctx, userID, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 measurement, got %d", len(list))
	}

	if _, err := svc.GetMeasurement(ctx, other, created.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found for foreign measurement, got %v", err)
	}
}
