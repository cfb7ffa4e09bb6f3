package entity

import "time"

// Post is an article written by a user inside a category.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UserID     int64     `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// OwnerID returns the author of the post.
func (p *Post) OwnerID() int64 {
	return p.UserID
}
