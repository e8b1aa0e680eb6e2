package entity

import (
	"time"
)

// Moderation thresholds. An account is blocked when a counter reaches its
// threshold; only an explicit admin unblock clears the flag.
const (
	WarningLimit      = 3
	LoginAttemptLimit = 4
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash.
type User struct {
	ID                 string
	FirstName          string
	LastName           string
	Email              string
	Password           string
	Bio                string
	ProfilePicture     string
	CoverPhoto         string
	IsAdmin            bool
	IsBlocked          bool
	IsAccountVerified  bool
	WarningsCount      int
	LoginWarningsCount int
	Followers          []string
	Following          []string
	ViewedBy           []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName joins first and last name for display and email templates.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
