package gorm

import "time"

// BodyMeasurement is a dated body composition snapshot.
type BodyMeasurement struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	UserID      uint      `gorm:"column:user_id;not null;index"`
	MeasuredAt  time.Time `gorm:"column:measured_at;type:date;not null"`
	WeightKg    *float64  `gorm:"column:weight_kg"`
	BodyFatPct  *float64  `gorm:"column:body_fat_pct"`
	MuscleKg    *float64  `gorm:"column:muscle_kg"`
	WaterPct    *float64  `gorm:"column:water_pct"`
	ChestCm     *float64  `gorm:"column:chest_cm"`
	WaistCm     *float64  `gorm:"column:waist_cm"`
	HipCm       *float64  `gorm:"column:hip_cm"`
	BicepCm     *float64  `gorm:"column:bicep_cm"`
	ThighCm     *float64  `gorm:"column:thigh_cm"`
	Notes       *string   `gorm:"column:notes;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (BodyMeasurement) TableName() string {
	return "body_measurements"
}
