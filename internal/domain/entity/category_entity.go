package entity

import "time"

// Category is a user-created post category with a unique title.
type Category struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
