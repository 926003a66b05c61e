package gorm

import "time"

// Expense is a single spending record.
type Expense struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	Name      string    `gorm:"column:name;type:varchar(200);not null"`
	Quantity  float64   `gorm:"column:quantity;not null"`
	Account   string    `gorm:"column:account;type:varchar(30);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}
