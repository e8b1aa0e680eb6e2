package application

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
	guard    *ModerationGuard
	logger   *logrus.Logger
}

func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	guard *ModerationGuard,
	logger *logrus.Logger,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, guard: guard, logger: logger}
}

type CommentRequest struct {
	PostID      string `json:"postId" binding:"required,uuid"`
	Description string `json:"description" binding:"required"`
}

func (s *CommentService) validate(ctx context.Context, userID, description string) error {
	if description == "" {
		return NewValidationError("Comment must be provided to post")
	}
	if err := s.guard.ScreenInjection(map[string]string{"description": description}); err != nil {
		return NewValidationError("Comment cannot contain characters < or >")
	}
	if utf8.RuneCountInString(description) < 10 {
		return NewValidationError("Comment must be at least 10 characters long")
	}
	if utf8.RuneCountInString(description) > 300 {
		return NewValidationError("Comment must be at most 300 characters long")
	}
	return s.guard.ScreenProfanity(ctx, userID, map[string]string{"description": description})
}

// Create attaches a new comment to a post. The author's account must be
// verified.
func (s *CommentService) Create(ctx context.Context, userID string, req CommentRequest) (*entity.Comment, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot create comment.")
	}
	if err := s.validate(ctx, userID, req.Description); err != nil {
		return nil, err
	}
	if _, err := s.posts.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}
	comment := &entity.Comment{
		ID:          uuid.NewString(),
		PostID:      req.PostID,
		UserID:      userID,
		Description: req.Description,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*entity.Comment, error) {
	return s.comments.GetByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context) ([]*entity.Comment, error) {
	return s.comments.List(ctx)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// Update replaces the comment text. Only the author or an admin may update,
// and the actor's account must be verified.
func (s *CommentService) Update(ctx context.Context, id, actorID, description string) (*entity.Comment, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot update comment.")
	}
	if err := s.validate(ctx, actorID, description); err != nil {
		return nil, err
	}
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID && !user.IsAdmin {
		return nil, NewUnauthorizedError("You are not allowed to update this comment")
	}
	comment.Description = description
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment. Only the author or an admin may delete.
func (s *CommentService) Delete(ctx context.Context, id, actorID string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if comment.UserID != actorID && !user.IsAdmin {
		return NewUnauthorizedError("You are not allowed to delete this comment")
	}
	return s.comments.Delete(ctx, id)
}

// Like toggles the user's like on the comment.
func (s *CommentService) Like(ctx context.Context, commentID, userID string) (*entity.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	comment.Reactions.Like(userID)
	return s.comments.UpdateReactions(ctx, commentID, comment.Reactions)
}

// Dislike toggles the user's dislike on the comment.
func (s *CommentService) Dislike(ctx context.Context, commentID, userID string) (*entity.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	comment.Reactions.Dislike(userID)
	return s.comments.UpdateReactions(ctx, commentID, comment.Reactions)
}
