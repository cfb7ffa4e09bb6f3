package entity

import "time"

// Comment is a user reply attached to a post.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerID returns the author of the comment.
func (c *Comment) OwnerID() int64 {
	return c.UserID
}
