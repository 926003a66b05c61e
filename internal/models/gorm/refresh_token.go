package gorm

import "time"

// RefreshToken is a long-lived token exchangeable for a new access token.
type RefreshToken struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Token     string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	Revoked   bool      `gorm:"column:revoked;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
