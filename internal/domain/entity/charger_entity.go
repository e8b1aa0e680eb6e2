package entity

import (
	"encoding/json"
	"time"
)

// EvCharger is a charging stop recommended by a user. A charger may exist on
// its own or be assigned to a post at a position along the route
// (SequenceNumber). ChargerInfo is the raw Open Charge Map style payload.
type EvCharger struct {
	ID             string
	UserID         string
	PostID         string // empty until assigned to a post
	Title          string
	Description    string
	Rating         float64
	ChargerInfo    json.RawMessage
	SequenceNumber int
	BatteryLevel   float64
	AvgConsumption float64
	IsAssigned     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
