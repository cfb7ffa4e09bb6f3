package model

import "time"

// ResetTokenModel mirrors the 'password_reset_tokens' table. Email is the key, so
// each address holds at most one outstanding token.
type ResetTokenModel struct {
	Email     string    `gorm:"type:varchar(255);primaryKey"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
