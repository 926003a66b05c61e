package dtos

import (
	"time"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// StartWorkoutRequest opens a gym session.
type StartWorkoutRequest struct {
	MuscleGroups []string `json:"muscle_groups"`
	Notes        *string  `json:"notes"`
}

// UpdateWorkoutRequest patches a workout's notes or muscle groups.
type UpdateWorkoutRequest struct {
	MuscleGroups []string `json:"muscle_groups"`
	Notes        *string  `json:"notes"`
}

// WorkoutResponse is the API shape of a workout.
type WorkoutResponse struct {
	ID              uint                `json:"id"`
	StartedAt       time.Time           `json:"started_at"`
	EndedAt         *time.Time          `json:"ended_at"`
	DurationMinutes *int                `json:"duration_minutes"`
	TotalExercises  int                 `json:"total_exercises"`
	TotalSets       int                 `json:"total_sets"`
	MuscleGroups    []string            `json:"muscle_groups"`
	Notes           *string             `json:"notes"`
	Exercises       []*ExerciseResponse `json:"exercises,omitempty"`
}

// NewWorkoutResponse maps a Workout row to its API shape. Exercises are
// attached only when preloaded.
func NewWorkoutResponse(w *gormModels.Workout) *WorkoutResponse {
	groups := make([]string, 0, len(w.MuscleGroups))
	for _, g := range w.MuscleGroups {
		groups = append(groups, g.MuscleGroup)
	}
	resp := &WorkoutResponse{
		ID:              w.ID,
		StartedAt:       w.StartedAt,
		EndedAt:         w.EndedAt,
		DurationMinutes: w.DurationMinutes,
		TotalExercises:  w.TotalExercises,
		TotalSets:       w.TotalSets,
		MuscleGroups:    groups,
		Notes:           w.Notes,
	}
	for i := range w.Exercises {
		resp.Exercises = append(resp.Exercises, NewExerciseResponse(&w.Exercises[i]))
	}
	return resp
}

// CreateExerciseRequest adds an exercise to a workout.
type CreateExerciseRequest struct {
	Name         string  `json:"name"`
	ExerciseType string  `json:"exercise_type"`
	Position     int     `json:"position"`
	Notes        *string `json:"notes"`
}

// UpdateExerciseRequest patches an exercise.
type UpdateExerciseRequest struct {
	Name         *string `json:"name"`
	ExerciseType *string `json:"exercise_type"`
	Position     *int    `json:"position"`
	Notes        *string `json:"notes"`
}

// ExerciseResponse is the API shape of an exercise with its sets.
type ExerciseResponse struct {
	ID           uint                   `json:"id"`
	WorkoutID    uint                   `json:"workout_id"`
	Name         string                 `json:"name"`
	ExerciseType string                 `json:"exercise_type"`
	Position     int                    `json:"position"`
	Notes        *string                `json:"notes"`
	Sets         []*ExerciseSetResponse `json:"sets"`
}

// NewExerciseResponse maps an Exercise row to its API shape.
func NewExerciseResponse(e *gormModels.Exercise) *ExerciseResponse {
	resp := &ExerciseResponse{
		ID:           e.ID,
		WorkoutID:    e.WorkoutID,
		Name:         e.Name,
		ExerciseType: e.ExerciseType,
		Position:     e.Position,
		Notes:        e.Notes,
		Sets:         []*ExerciseSetResponse{},
	}
	for i := range e.Sets {
		resp.Sets = append(resp.Sets, NewExerciseSetResponse(&e.Sets[i]))
	}
	return resp
}

// CreateSetRequest logs one set of an exercise.
type CreateSetRequest struct {
	SetNumber       int      `json:"set_number"`
	WeightKg        *float64 `json:"weight_kg"`
	Reps            *int     `json:"reps"`
	SpeedKmh        *float64 `json:"speed_kmh"`
	InclinePercent  *float64 `json:"incline_percent"`
	DurationSeconds *int     `json:"duration_seconds"`
	RPE             *float64 `json:"rpe"`
	Notes           *string  `json:"notes"`
}

// UpdateSetRequest patches a set.
type UpdateSetRequest struct {
	SetNumber       *int     `json:"set_number"`
	WeightKg        *float64 `json:"weight_kg"`
	Reps            *int     `json:"reps"`
	SpeedKmh        *float64 `json:"speed_kmh"`
	InclinePercent  *float64 `json:"incline_percent"`
	DurationSeconds *int     `json:"duration_seconds"`
	RPE             *float64 `json:"rpe"`
	Notes           *string  `json:"notes"`
}

// ExerciseSetResponse is the API shape of one set.
type ExerciseSetResponse struct {
	ID              uint     `json:"id"`
	SetNumber       int      `json:"set_number"`
	WeightKg        *float64 `json:"weight_kg"`
	Reps            *int     `json:"reps"`
	SpeedKmh        *float64 `json:"speed_kmh"`
	InclinePercent  *float64 `json:"incline_percent"`
	DurationSeconds *int     `json:"duration_seconds"`
	RPE             *float64 `json:"rpe"`
	Notes           *string  `json:"notes"`
}

// NewExerciseSetResponse maps an ExerciseSet row to its API shape.
func NewExerciseSetResponse(s *gormModels.ExerciseSet) *ExerciseSetResponse {
	return &ExerciseSetResponse{
		ID:              s.ID,
		SetNumber:       s.SetNumber,
		WeightKg:        s.WeightKg,
		Reps:            s.Reps,
		SpeedKmh:        s.SpeedKmh,
		InclinePercent:  s.InclinePercent,
		DurationSeconds: s.DurationSeconds,
		RPE:             s.RPE,
		Notes:           s.Notes,
	}
}

// CreateMeasurementRequest logs a body composition snapshot.
type CreateMeasurementRequest struct {
	MeasuredAt string   `json:"measured_at"`
	WeightKg   *float64 `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
	MuscleKg   *float64 `json:"muscle_kg"`
	WaterPct   *float64 `json:"water_pct"`
	ChestCm    *float64 `json:"chest_cm"`
	WaistCm    *float64 `json:"waist_cm"`
	HipCm      *float64 `json:"hip_cm"`
	BicepCm    *float64 `json:"bicep_cm"`
	ThighCm    *float64 `json:"thigh_cm"`
	Notes      *string  `json:"notes"`
}

// UpdateMeasurementRequest patches a body measurement.
type UpdateMeasurementRequest struct {
	WeightKg   *float64 `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
	MuscleKg   *float64 `json:"muscle_kg"`
	WaterPct   *float64 `json:"water_pct"`
	ChestCm    *float64 `json:"chest_cm"`
	WaistCm    *float64 `json:"waist_cm"`
	HipCm      *float64 `json:"hip_cm"`
	BicepCm    *float64 `json:"bicep_cm"`
	ThighCm    *float64 `json:"thigh_cm"`
	Notes      *string  `json:"notes"`
}

// MeasurementResponse is the API shape of a body measurement.
type MeasurementResponse struct {
	ID         uint     `json:"id"`
	MeasuredAt string   `json:"measured_at"`
	WeightKg   *float64 `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
	MuscleKg   *float64 `json:"muscle_kg"`
	WaterPct   *float64 `json:"water_pct"`
	ChestCm    *float64 `json:"chest_cm"`
	WaistCm    *float64 `json:"waist_cm"`
	HipCm      *float64 `json:"hip_cm"`
	BicepCm    *float64 `json:"bicep_cm"`
	ThighCm    *float64 `json:"thigh_cm"`
	Notes      *string  `json:"notes"`
}

// NewMeasurementResponse maps a BodyMeasurement row to its API shape.
func NewMeasurementResponse(m *gormModels.BodyMeasurement) *MeasurementResponse {
	return &MeasurementResponse{
		ID:         m.ID,
		MeasuredAt: m.MeasuredAt.Format(dateLayout),
		WeightKg:   m.WeightKg,
		BodyFatPct: m.BodyFatPct,
		MuscleKg:   m.MuscleKg,
		WaterPct:   m.WaterPct,
		ChestCm:    m.ChestCm,
		WaistCm:    m.WaistCm,
		HipCm:      m.HipCm,
		BicepCm:    m.BicepCm,
		ThighCm:    m.ThighCm,
		Notes:      m.Notes,
	}
}
