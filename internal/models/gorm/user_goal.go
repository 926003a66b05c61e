package gorm

import "time"

// Default daily macro targets applied when a goal row is lazily created.
const (
	DefaultGoalEnergyKcal     = 2000.0
	DefaultGoalProteinsG      = 150.0
	DefaultGoalCarbohydratesG = 250.0
	DefaultGoalFatG           = 65.0
	DefaultGoalFiberG         = 25.0
)

// UserGoal holds a user's daily macro targets, one row per user.
type UserGoal struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	UserID         uint      `gorm:"column:user_id;not null;uniqueIndex:uq_user_goals_user_id"`
	EnergyKcal     float64   `gorm:"column:energy_kcal;not null;default:2000"`
	ProteinsG      float64   `gorm:"column:proteins_g;not null;default:150"`
	CarbohydratesG float64   `gorm:"column:carbohydrates_g;not null;default:250"`
	FatG           float64   `gorm:"column:fat_g;not null;default:65"`
	FiberG         *float64  `gorm:"column:fiber_g;default:25"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (UserGoal) TableName() string {
	return "user_goals"
}

// NewDefaultGoal builds the lazily created goal row for a user.
func NewDefaultGoal(userID uint) *UserGoal {
	fiber := DefaultGoalFiberG
	return &UserGoal{
		UserID:         userID,
		EnergyKcal:     DefaultGoalEnergyKcal,
		ProteinsG:      DefaultGoalProteinsG,
		CarbohydratesG: DefaultGoalCarbohydratesG,
		FatG:           DefaultGoalFatG,
		FiberG:         &fiber,
	}
}
