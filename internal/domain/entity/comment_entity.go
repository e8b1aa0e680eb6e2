package entity

import "time"

// Comment belongs to a post and carries its own reaction sets.
type Comment struct {
	ID          string
	PostID      string
	UserID      string
	Description string
	Reactions   Reactions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
