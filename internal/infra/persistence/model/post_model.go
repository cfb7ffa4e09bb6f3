package model

import "time"

// PostModel mirrors the 'posts' table. Rows are removed with their author or category.
type PostModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(255);not null"`
	Content    string `gorm:"type:text;not null"`
	UserID     int64  `gorm:"not null;index"`
	CategoryID int64  `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
