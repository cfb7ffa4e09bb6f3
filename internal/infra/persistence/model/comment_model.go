package model

import "time"

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Content   string `gorm:"type:text;not null"`
	UserID    int64  `gorm:"not null;index"`
	PostID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
