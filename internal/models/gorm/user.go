package gorm

import "time"

// User is an authenticated account owning all tracked records.
type User struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Username       string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(100);not null"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
