package gorm

import "time"

// Workout is a gym session. A user may have at most one workout with a nil
// EndedAt; the check happens at start time in the service layer.
type Workout struct {
	ID              uint       `gorm:"column:id;primaryKey"`
	UserID          uint       `gorm:"column:user_id;not null;index"`
	StartedAt       time.Time  `gorm:"column:started_at;autoCreateTime"`
	EndedAt         *time.Time `gorm:"column:ended_at"`
	DurationMinutes *int       `gorm:"column:duration_minutes"`
	TotalExercises  int        `gorm:"column:total_exercises;default:0"`
	TotalSets       int        `gorm:"column:total_sets;default:0"`
	Notes           *string    `gorm:"column:notes;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	User         User                 `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	MuscleGroups []WorkoutMuscleGroup `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
	Exercises    []Exercise           `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Workout) TableName() string {
	return "workouts"
}

// WorkoutMuscleGroup tags a workout with one trained muscle group.
type WorkoutMuscleGroup struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	WorkoutID   uint   `gorm:"column:workout_id;not null;index"`
	MuscleGroup string `gorm:"column:muscle_group;type:varchar(30);not null"`
}

// TableName specifies the table name for GORM
func (WorkoutMuscleGroup) TableName() string {
	return "workout_muscle_groups"
}
