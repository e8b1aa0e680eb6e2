package entity

import "time"

// EmailMessage records a message sent from one user to another (or to the
// admin). The message body is screened before it is persisted; IsFlagged marks
// messages that an admin later reported.
type EmailMessage struct {
	ID        string
	FromEmail string
	ToEmail   string
	Subject   string
	Message   string
	Category  string
	SentBy    string // user id of the sender
	IsFlagged bool
	CreatedAt time.Time
}
