package repository

import (
	"context"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// CommentRepository defines the store operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	List(ctx context.Context) ([]*entity.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id string) error

	// UpdateReactions persists both reaction sets in one write and returns the
	// updated comment.
	UpdateReactions(ctx context.Context, id string, r entity.Reactions) (*entity.Comment, error)
}
