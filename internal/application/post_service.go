package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

// PostIndexer is the full-text index kept alongside the primary store.
type PostIndexer interface {
	Index(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]string, error)
}

type PostService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	chargers repository.ChargerRepository
	guard    *ModerationGuard
	index    PostIndexer
	uploader Uploader
	logger   *logrus.Logger
}

func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	chargers repository.ChargerRepository,
	guard *ModerationGuard,
	index PostIndexer,
	uploader Uploader,
	logger *logrus.Logger,
) *PostService {
	return &PostService{
		posts:    posts,
		users:    users,
		chargers: chargers,
		guard:    guard,
		index:    index,
		uploader: uploader,
		logger:   logger,
	}
}

type PostRequest struct {
	Title               string          `json:"title" binding:"required,min=3,max=100"`
	Description         string          `json:"description" binding:"required,min=10"`
	MainCategory        string          `json:"mainCategory" binding:"required"`
	CarName             string          `json:"carName" binding:"required"`
	UsableBatterySize   float64         `json:"usableBatterySize" binding:"required,gt=0"`
	Efficiency          float64         `json:"efficiency" binding:"required,gt=0"`
	StartingLocation    json.RawMessage `json:"startingLocation" binding:"required"`
	EndLocation         json.RawMessage `json:"endLocation" binding:"required"`
	RecommendedChargers json.RawMessage `json:"recommendedChargers" binding:"required"`
	Image               string          `json:"image" binding:"required"`
	IsPublic            bool            `json:"isPublic"`
	Chargers            []string        `json:"chargers"`
}

func (s *PostService) screen(ctx context.Context, userID string, req PostRequest) error {
	if err := s.guard.ScreenInjection(map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"carName":     req.CarName,
	}); err != nil {
		return err
	}
	return s.guard.ScreenProfanity(ctx, userID, map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"carName":     req.CarName,
	})
}

// Create validates and stores a new trip post, attaches the selected chargers
// in route order and indexes the post for search.
func (s *PostService) Create(ctx context.Context, userID string, req PostRequest) (*entity.Post, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot create a post.")
	}
	if err := s.screen(ctx, userID, req); err != nil {
		return nil, err
	}
	if len(req.Chargers) > entity.MaxChargersPerPost {
		return nil, NewValidationError(fmt.Sprintf("You can only add up to %d chargers!", entity.MaxChargersPerPost))
	}

	post := &entity.Post{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		MainCategory:        req.MainCategory,
		CarName:             req.CarName,
		UsableBatterySize:   req.UsableBatterySize,
		Efficiency:          req.Efficiency,
		StartingLocation:    req.StartingLocation,
		EndLocation:         req.EndLocation,
		RecommendedChargers: req.RecommendedChargers,
		Image:               req.Image,
		IsPublic:            req.IsPublic,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	for i, chargerID := range req.Chargers {
		if err := s.chargers.AssignToPost(ctx, chargerID, post.ID, i); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"post_id":    post.ID,
				"charger_id": chargerID,
			}).Warn("assign charger to post")
		}
	}

	if err := s.index.Index(ctx, post); err != nil {
		s.logger.WithError(err).WithField("post_id", post.ID).Warn("index post")
	}
	return post, nil
}

// Update replaces the post contents. Only the author or an admin may update.
func (s *PostService) Update(ctx context.Context, id, actorID string, req PostRequest) (*entity.Post, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot update post.")
	}
	if err := s.screen(ctx, actorID, req); err != nil {
		return nil, err
	}
	if len(req.Chargers) > entity.MaxChargersPerPost {
		return nil, NewValidationError(fmt.Sprintf("You can only add up to %d chargers!", entity.MaxChargersPerPost))
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID && !user.IsAdmin {
		return nil, NewUnauthorizedError("You are not allowed to update this post")
	}

	post.Title = req.Title
	post.Description = req.Description
	post.MainCategory = req.MainCategory
	post.CarName = req.CarName
	post.UsableBatterySize = req.UsableBatterySize
	post.Efficiency = req.Efficiency
	post.StartingLocation = req.StartingLocation
	post.EndLocation = req.EndLocation
	post.RecommendedChargers = req.RecommendedChargers
	post.Image = req.Image
	post.IsPublic = req.IsPublic
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	for i, chargerID := range req.Chargers {
		if err := s.chargers.AssignToPost(ctx, chargerID, post.ID, i); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"post_id":    post.ID,
				"charger_id": chargerID,
			}).Warn("assign charger to post")
		}
	}

	if err := s.index.Index(ctx, post); err != nil {
		s.logger.WithError(err).WithField("post_id", post.ID).Warn("index post")
	}
	return post, nil
}

// Get returns a single post and counts the view.
func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.IncrementViews(ctx, id); err != nil {
		s.logger.WithError(err).WithField("post_id", id).Warn("increment views")
	} else {
		post.NumViews++
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	return s.posts.List(ctx)
}

// Delete removes the post. Only the author or an admin may delete.
func (s *PostService) Delete(ctx context.Context, id, actorID string) error {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != actorID && !user.IsAdmin {
		return NewUnauthorizedError("You are not allowed to delete this post")
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.index.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("post_id", id).Warn("remove post from index")
	}
	return nil
}

// Like toggles the user's like on the post. Liking a disliked post removes the
// dislike, liking twice returns the post to neutral.
func (s *PostService) Like(ctx context.Context, postID, userID string) (*entity.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Reactions.Like(userID)
	return s.posts.UpdateReactions(ctx, postID, post.Reactions)
}

// Dislike is the mirror of Like.
func (s *PostService) Dislike(ctx context.Context, postID, userID string) (*entity.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Reactions.Dislike(userID)
	return s.posts.UpdateReactions(ctx, postID, post.Reactions)
}

// Search queries the full-text index and resolves the hits against the
// primary store, dropping posts deleted since they were indexed.
func (s *PostService) Search(ctx context.Context, query string) ([]*entity.Post, error) {
	if err := s.guard.ScreenInjection(map[string]string{"query": query}); err != nil {
		return nil, err
	}
	ids, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	posts := make([]*entity.Post, 0, len(ids))
	for _, id := range ids {
		post, err := s.posts.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// UploadImage stores a post image and returns its public URL.
func (s *PostService) UploadImage(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error) {
	return s.uploader.Upload(ctx, fmt.Sprintf("posts/%s/%d-%s", userID, time.Now().UnixNano(), filename), contentType, r)
}
