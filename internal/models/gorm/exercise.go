package gorm

import "time"

// Exercise is one movement performed within a workout.
type Exercise struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	WorkoutID    uint      `gorm:"column:workout_id;not null;index"`
	Name         string    `gorm:"column:name;type:varchar(100);not null"`
	ExerciseType string    `gorm:"column:exercise_type;type:varchar(30);not null"`
	Position     int       `gorm:"column:position;not null;default:0"`
	Notes        *string   `gorm:"column:notes;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	Sets []ExerciseSet `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Exercise) TableName() string {
	return "exercises"
}

// ExerciseSet is one set of an exercise; strength and cardio fields are
// both present and nullable since the exercise type decides which apply.
type ExerciseSet struct {
	ID              uint      `gorm:"column:id;primaryKey"`
	ExerciseID      uint      `gorm:"column:exercise_id;not null;index"`
	SetNumber       int       `gorm:"column:set_number;not null"`
	WeightKg        *float64  `gorm:"column:weight_kg"`
	Reps            *int      `gorm:"column:reps"`
	SpeedKmh        *float64  `gorm:"column:speed_kmh"`
	InclinePercent  *float64  `gorm:"column:incline_percent"`
	DurationSeconds *int      `gorm:"column:duration_seconds"`
	RPE             *float64  `gorm:"column:rpe"`
	Notes           *string   `gorm:"column:notes;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ExerciseSet) TableName() string {
	return "exercise_sets"
}
