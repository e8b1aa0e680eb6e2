package entity

import (
	"encoding/json"
	"time"
)

// Post is a road-trip story: route endpoints, the car driven and the chargers
// recommended along the way. Locations and charger payloads come from the
// front-end map widget and are stored as raw JSON documents.
type Post struct {
	ID                  string
	UserID              string
	Title               string
	Description         string
	MainCategory        string
	CarName             string
	UsableBatterySize   float64
	Efficiency          float64
	StartingLocation    json.RawMessage
	EndLocation         json.RawMessage
	RecommendedChargers json.RawMessage
	Image               string
	IsPublic            bool
	NumViews            int
	Reactions           Reactions
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MaxChargersPerPost caps the chargers attachable to a single trip post.
const MaxChargersPerPost = 23
