package gorm

import "time"

// MealType orders a day's diary into the canonical meal slots.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
	MealOther          MealType = "other"
)

// MealOrder is the canonical presentation order for daily summaries.
var MealOrder = []MealType{
	MealBreakfast,
	MealMorningSnack,
	MealLunch,
	MealAfternoonSnack,
	MealDinner,
	MealOther,
}

// DiaryEntry is one (user, product, date, meal) logging event. The nutrient
// columns are a snapshot scaled from the product's per-100g values at write
// time; they are recalculated whenever amount_g changes, never derived lazily.
type DiaryEntry struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null;index:ix_diary_user_date"`
	ProductID uint      `gorm:"column:product_id;not null"`
	EntryDate time.Time `gorm:"column:entry_date;type:date;not null;index:ix_diary_user_date"`
	MealType  MealType  `gorm:"column:meal_type;type:varchar(20);not null"`
	AmountG   float64   `gorm:"column:amount_g;not null"`

	EnergyKcal     *float64 `gorm:"column:energy_kcal"`
	ProteinsG      *float64 `gorm:"column:proteins_g"`
	CarbohydratesG *float64 `gorm:"column:carbohydrates_g"`
	SugarsG        *float64 `gorm:"column:sugars_g"`
	FatG           *float64 `gorm:"column:fat_g"`
	SaturatedFatG  *float64 `gorm:"column:saturated_fat_g"`
	FiberG         *float64 `gorm:"column:fiber_g"`
	SaltG          *float64 `gorm:"column:salt_g"`

	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product Product `gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name for GORM
func (DiaryEntry) TableName() string {
	return "diary_entries"
}
