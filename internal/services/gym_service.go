package services

import (
	"context"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// GymService manages workouts, their exercises and sets, and body
// measurements. Resource access is checked in a fixed order: workout
// ownership first, then resource existence, then resource-belongs-to-workout.
type GymService struct {
	repo  *repositories.GymRepository
	nowFn func() time.Time
}

func NewGymService(repo *repositories.GymRepository) *GymService {
	return &GymService{repo: repo, nowFn: time.Now}
}

// ── Workouts ──

// StartWorkout opens a session. At most one un-ended workout per user,
// enforced by a check-then-insert: concurrent starts from the same user can
// slip past it.
func (s *GymService) StartWorkout(ctx context.Context, userID uint, req dtos.StartWorkoutRequest) (*dtos.WorkoutResponse, error) {
	active, err := s.repo.FindActiveWorkout(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperrors.AlreadyActive("an active workout already exists")
	}

	workout := &gormModels.Workout{
		UserID:    userID,
		StartedAt: s.nowFn(),
		Notes:     req.Notes,
	}
	for _, group := range req.MuscleGroups {
		workout.MuscleGroups = append(workout.MuscleGroups, gormModels.WorkoutMuscleGroup{MuscleGroup: group})
	}

	if err := s.repo.CreateWorkout(ctx, workout); err != nil {
		return nil, err
	}
	logging.Info("workout started", "user_id", userID, "workout_id", workout.ID)
	return dtos.NewWorkoutResponse(workout), nil
}

// EndWorkout closes the session and freezes duration and totals.
func (s *GymService) EndWorkout(ctx context.Context, userID, workoutID uint) (*dtos.WorkoutResponse, error) {
	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.EndedAt != nil {
		return nil, apperrors.Conflict("workout %d is already ended", workoutID)
	}

	now := s.nowFn()
	duration := int(now.Sub(workout.StartedAt).Minutes())
	exercises, sets, err := s.repo.CountExercisesAndSets(ctx, workout.ID)
	if err != nil {
		return nil, err
	}

	workout.EndedAt = &now
	workout.DurationMinutes = &duration
	workout.TotalExercises = exercises
	workout.TotalSets = sets

	if err := s.repo.SaveWorkout(ctx, workout); err != nil {
		return nil, err
	}
	return dtos.NewWorkoutResponse(workout), nil
}

func (s *GymService) GetWorkout(ctx context.Context, userID, workoutID uint) (*dtos.WorkoutResponse, error) {
	workout, err := s.repo.GetWorkoutWithDetails(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	return dtos.NewWorkoutResponse(workout), nil
}

func (s *GymService) ListWorkouts(ctx context.Context, userID uint, limit, offset int) ([]*dtos.WorkoutResponse, error) {
	workouts, err := s.repo.ListWorkouts(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		result = append(result, dtos.NewWorkoutResponse(&workouts[i]))
	}
	return result, nil
}

func (s *GymService) UpdateWorkout(ctx context.Context, userID, workoutID uint, req dtos.UpdateWorkoutRequest) (*dtos.WorkoutResponse, error) {
	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if req.Notes != nil {
		workout.Notes = req.Notes
	}
	if req.MuscleGroups != nil {
		groups := make([]gormModels.WorkoutMuscleGroup, 0, len(req.MuscleGroups))
		for _, g := range req.MuscleGroups {
			groups = append(groups, gormModels.WorkoutMuscleGroup{WorkoutID: workout.ID, MuscleGroup: g})
		}
		workout.MuscleGroups = groups
	}
	if err := s.repo.SaveWorkout(ctx, workout); err != nil {
		return nil, err
	}
	return dtos.NewWorkoutResponse(workout), nil
}

func (s *GymService) DeleteWorkout(ctx context.Context, userID, workoutID uint) error {
	return s.repo.DeleteWorkout(ctx, userID, workoutID)
}

// ── Exercises ──

func (s *GymService) AddExercise(ctx context.Context, userID, workoutID uint, req dtos.CreateExerciseRequest) (*dtos.ExerciseResponse, error) {
	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	exercise := &gormModels.Exercise{
		WorkoutID:    workout.ID,
		Name:         req.Name,
		ExerciseType: req.ExerciseType,
		Position:     req.Position,
		Notes:        req.Notes,
	}
	if err := s.repo.CreateExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return dtos.NewExerciseResponse(exercise), nil
}

func (s *GymService) ListWorkoutExercises(ctx context.Context, userID, workoutID uint) ([]*dtos.ExerciseResponse, error) {
	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.repo.ListExercises(ctx, workout.ID)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		result = append(result, dtos.NewExerciseResponse(&exercises[i]))
	}
	return result, nil
}

// getOwnedExercise applies the fixed check order: workout ownership, then
// exercise existence, then exercise-belongs-to-workout.
func (s *GymService) getOwnedExercise(ctx context.Context, userID, workoutID, exerciseID uint) (*gormModels.Exercise, error) {
	if _, err := s.repo.GetWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	exercise, err := s.repo.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.WorkoutID != workoutID {
		return nil, apperrors.NotFound("exercise %d not found", exerciseID)
	}
	return exercise, nil
}

func (s *GymService) UpdateExercise(ctx context.Context, userID, workoutID, exerciseID uint, req dtos.UpdateExerciseRequest) (*dtos.ExerciseResponse, error) {
	exercise, err := s.getOwnedExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		exercise.Name = *req.Name
	}
	if req.ExerciseType != nil {
		exercise.ExerciseType = *req.ExerciseType
	}
	if req.Position != nil {
		exercise.Position = *req.Position
	}
	if req.Notes != nil {
		exercise.Notes = req.Notes
	}
	if err := s.repo.SaveExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return dtos.NewExerciseResponse(exercise), nil
}

func (s *GymService) DeleteExercise(ctx context.Context, userID, workoutID, exerciseID uint) error {
	exercise, err := s.getOwnedExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return err
	}
	return s.repo.DeleteExercise(ctx, exercise.ID)
}

// ── Sets ──

func (s *GymService) AddSet(ctx context.Context, userID, workoutID, exerciseID uint, req dtos.CreateSetRequest) (*dtos.ExerciseSetResponse, error) {
	exercise, err := s.getOwnedExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return nil, err
	}

	set := &gormModels.ExerciseSet{
		ExerciseID:      exercise.ID,
		SetNumber:       req.SetNumber,
		WeightKg:        req.WeightKg,
		Reps:            req.Reps,
		SpeedKmh:        req.SpeedKmh,
		InclinePercent:  req.InclinePercent,
		DurationSeconds: req.DurationSeconds,
		RPE:             req.RPE,
		Notes:           req.Notes,
	}
	if set.SetNumber <= 0 {
		set.SetNumber = len(exercise.Sets) + 1
	}
	if err := s.repo.CreateSet(ctx, set); err != nil {
		return nil, err
	}
	return dtos.NewExerciseSetResponse(set), nil
}

// getOwnedSet extends the exercise check order one level down.
func (s *GymService) getOwnedSet(ctx context.Context, userID, workoutID, exerciseID, setID uint) (*gormModels.ExerciseSet, error) {
	if _, err := s.getOwnedExercise(ctx, userID, workoutID, exerciseID); err != nil {
		return nil, err
	}
	set, err := s.repo.GetSet(ctx, setID)
	if err != nil {
		return nil, err
	}
	if set.ExerciseID != exerciseID {
		return nil, apperrors.NotFound("set %d not found", setID)
	}
	return set, nil
}

func (s *GymService) UpdateSet(ctx context.Context, userID, workoutID, exerciseID, setID uint, req dtos.UpdateSetRequest) (*dtos.ExerciseSetResponse, error) {
	set, err := s.getOwnedSet(ctx, userID, workoutID, exerciseID, setID)
	if err != nil {
		return nil, err
	}
	if req.SetNumber != nil {
		set.SetNumber = *req.SetNumber
	}
	if req.WeightKg != nil {
		set.WeightKg = req.WeightKg
	}
	if req.Reps != nil {
		set.Reps = req.Reps
	}
	if req.SpeedKmh != nil {
		set.SpeedKmh = req.SpeedKmh
	}
	if req.InclinePercent != nil {
		set.InclinePercent = req.InclinePercent
	}
	if req.DurationSeconds != nil {
		set.DurationSeconds = req.DurationSeconds
	}
	if req.RPE != nil {
		set.RPE = req.RPE
	}
	if req.Notes != nil {
		set.Notes = req.Notes
	}
	if err := s.repo.SaveSet(ctx, set); err != nil {
		return nil, err
	}
	return dtos.NewExerciseSetResponse(set), nil
}

func (s *GymService) DeleteSet(ctx context.Context, userID, workoutID, exerciseID, setID uint) error {
	set, err := s.getOwnedSet(ctx, userID, workoutID, exerciseID, setID)
	if err != nil {
		return err
	}
	return s.repo.DeleteSet(ctx, set.ID)
}

// ── Body measurements ──

func (s *GymService) CreateMeasurement(ctx context.Context, userID uint, req dtos.CreateMeasurementRequest) (*dtos.MeasurementResponse, error) {
	measuredAt, err := time.Parse("2006-01-02", req.MeasuredAt)
	if err != nil {
		return nil, apperrors.Validation("measured_at must be YYYY-MM-DD")
	}

	m := &gormModels.BodyMeasurement{
		UserID:     userID,
		MeasuredAt: measuredAt,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		MuscleKg:   req.MuscleKg,
		WaterPct:   req.WaterPct,
		ChestCm:    req.ChestCm,
		WaistCm:    req.WaistCm,
		HipCm:      req.HipCm,
		BicepCm:    req.BicepCm,
		ThighCm:    req.ThighCm,
		Notes:      req.Notes,
	}
	if err := s.repo.CreateMeasurement(ctx, m); err != nil {
		return nil, err
	}
	return dtos.NewMeasurementResponse(m), nil
}

func (s *GymService) GetMeasurement(ctx context.Context, userID, measurementID uint) (*dtos.MeasurementResponse, error) {
	m, err := s.repo.GetMeasurement(ctx, userID, measurementID)
	if err != nil {
		return nil, err
	}
	return dtos.NewMeasurementResponse(m), nil
}

func (s *GymService) ListMeasurements(ctx context.Context, userID uint, limit int) ([]*dtos.MeasurementResponse, error) {
	measurements, err := s.repo.ListMeasurements(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.MeasurementResponse, 0, len(measurements))
	for i := range measurements {
		result = append(result, dtos.NewMeasurementResponse(&measurements[i]))
	}
	return result, nil
}

func (s *GymService) UpdateMeasurement(ctx context.Context, userID, measurementID uint, req dtos.UpdateMeasurementRequest) (*dtos.MeasurementResponse, error) {
	m, err := s.repo.GetMeasurement(ctx, userID, measurementID)
	if err != nil {
		return nil, err
	}
	if req.WeightKg != nil {
		m.WeightKg = req.WeightKg
	}
	if req.BodyFatPct != nil {
		m.BodyFatPct = req.BodyFatPct
	}
	if req.MuscleKg != nil {
		m.MuscleKg = req.MuscleKg
	}
	if req.WaterPct != nil {
		m.WaterPct = req.WaterPct
	}
	if req.ChestCm != nil {
		m.ChestCm = req.ChestCm
	}
	if req.WaistCm != nil {
		m.WaistCm = req.WaistCm
	}
	if req.HipCm != nil {
		m.HipCm = req.HipCm
	}
	if req.BicepCm != nil {
		m.BicepCm = req.BicepCm
	}
	if req.ThighCm != nil {
		m.ThighCm = req.ThighCm
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}
	if err := s.repo.SaveMeasurement(ctx, m); err != nil {
		return nil, err
	}
	return dtos.NewMeasurementResponse(m), nil
}

func (s *GymService) DeleteMeasurement(ctx context.Context, userID, measurementID uint) error {
	return s.repo.DeleteMeasurement(ctx, userID, measurementID)
}
