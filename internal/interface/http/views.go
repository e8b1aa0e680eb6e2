package handlers

import (
	"encoding/json"
	"time"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// Views are the JSON shapes returned to clients. Reaction counts and the
// viewer's own reaction are derived from the stored sets on the way out.

type UserView struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Bio               string    `json:"bio,omitempty"`
	ProfilePicture    string    `json:"profilePicture,omitempty"`
	CoverPhoto        string    `json:"coverPhoto,omitempty"`
	IsAdmin           bool      `json:"isAdmin"`
	IsBlocked         bool      `json:"isBlocked"`
	IsAccountVerified bool      `json:"isAccountVerified"`
	Followers         []string  `json:"followers"`
	Following         []string  `json:"following"`
	ViewedBy          []string  `json:"viewedBy"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toUserView(u *entity.User) UserView {
	return UserView{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		Bio:               u.Bio,
		ProfilePicture:    u.ProfilePicture,
		CoverPhoto:        u.CoverPhoto,
		IsAdmin:           u.IsAdmin,
		IsBlocked:         u.IsBlocked,
		IsAccountVerified: u.IsAccountVerified,
		Followers:         emptyIfNil(u.Followers),
		Following:         emptyIfNil(u.Following),
		ViewedBy:          emptyIfNil(u.ViewedBy),
		CreatedAt:         u.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	return out
}

type ReactionView struct {
	Likes    []string `json:"likes"`
	DisLikes []string `json:"disLikes"`
	Reaction string   `json:"reaction"` // the viewer's own state
}

func toReactionView(r entity.Reactions, viewerID string) ReactionView {
	return ReactionView{
		Likes:    emptyIfNil(r.Likes),
		DisLikes: emptyIfNil(r.DisLikes),
		Reaction: r.StateFor(viewerID).String(),
	}
}

type PostView struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"userId"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	MainCategory        string          `json:"mainCategory"`
	CarName             string          `json:"carName"`
	UsableBatterySize   float64         `json:"usableBatterySize"`
	Efficiency          float64         `json:"efficiency"`
	StartingLocation    json.RawMessage `json:"startingLocation"`
	EndLocation         json.RawMessage `json:"endLocation"`
	RecommendedChargers json.RawMessage `json:"recommendedChargers"`
	Image               string          `json:"image"`
	IsPublic            bool            `json:"isPublic"`
	NumViews            int             `json:"numViews"`
	Reactions           ReactionView    `json:"reactions"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func toPostView(p *entity.Post, viewerID string) PostView {
	return PostView{
		ID:                  p.ID,
		UserID:              p.UserID,
		Title:               p.Title,
		Description:         p.Description,
		MainCategory:        p.MainCategory,
		CarName:             p.CarName,
		UsableBatterySize:   p.UsableBatterySize,
		Efficiency:          p.Efficiency,
		StartingLocation:    p.StartingLocation,
		EndLocation:         p.EndLocation,
		RecommendedChargers: p.RecommendedChargers,
		Image:               p.Image,
		IsPublic:            p.IsPublic,
		NumViews:            p.NumViews,
		Reactions:           toReactionView(p.Reactions, viewerID),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toPostViews(posts []*entity.Post, viewerID string) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostView(p, viewerID))
	}
	return out
}

type CommentView struct {
	ID          string       `json:"id"`
	PostID      string       `json:"postId"`
	UserID      string       `json:"userId"`
	Description string       `json:"description"`
	Reactions   ReactionView `json:"reactions"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func toCommentView(c *entity.Comment, viewerID string) CommentView {
	return CommentView{
		ID:          c.ID,
		PostID:      c.PostID,
		UserID:      c.UserID,
		Description: c.Description,
		Reactions:   toReactionView(c.Reactions, viewerID),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCommentViews(comments []*entity.Comment, viewerID string) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentView(c, viewerID))
	}
	return out
}

type ChargerView struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	PostID         string          `json:"postId,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Rating         float64         `json:"rating"`
	ChargerInfo    json.RawMessage `json:"chargerInfo"`
	SequenceNumber int             `json:"sequenceNumber"`
	BatteryLevel   float64         `json:"batteryLevel"`
	AvgConsumption float64         `json:"avgConsumption"`
	IsAssigned     bool            `json:"isAssigned"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func toChargerView(c *entity.EvCharger) ChargerView {
	return ChargerView{
		ID:             c.ID,
		UserID:         c.UserID,
		PostID:         c.PostID,
		Title:          c.Title,
		Description:    c.Description,
		Rating:         c.Rating,
		ChargerInfo:    c.ChargerInfo,
		SequenceNumber: c.SequenceNumber,
		BatteryLevel:   c.BatteryLevel,
		AvgConsumption: c.AvgConsumption,
		IsAssigned:     c.IsAssigned,
		CreatedAt:      c.CreatedAt,
	}
}

func toChargerViews(chargers []*entity.EvCharger) []ChargerView {
	out := make([]ChargerView, 0, len(chargers))
	for _, c := range chargers {
		out = append(out, toChargerView(c))
	}
	return out
}

type CategoryView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCategoryView(c *entity.Category) CategoryView {
	return CategoryView{ID: c.ID, UserID: c.UserID, Title: c.Title, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toCategoryViews(categories []*entity.Category) []CategoryView {
	out := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryView(c))
	}
	return out
}

type EmailMessageView struct {
	ID        string    `json:"id"`
	FromEmail string    `json:"fromEmail"`
	ToEmail   string    `json:"toEmail"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	SentBy    string    `json:"sentBy,omitempty"`
	IsFlagged bool      `json:"isFlagged"`
	CreatedAt time.Time `json:"createdAt"`
}

func toEmailMessageView(m *entity.EmailMessage) EmailMessageView {
	return EmailMessageView{
		ID:        m.ID,
		FromEmail: m.FromEmail,
		ToEmail:   m.ToEmail,
		Subject:   m.Subject,
		Message:   m.Message,
		Category:  m.Category,
		SentBy:    m.SentBy,
		IsFlagged: m.IsFlagged,
		CreatedAt: m.CreatedAt,
	}
}

func toEmailMessageViews(messages []*entity.EmailMessage) []EmailMessageView {
	out := make([]EmailMessageView, 0, len(messages))
	for _, m := range messages {
		out = append(out, toEmailMessageView(m))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
