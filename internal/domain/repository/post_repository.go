package repository

import (
	"context"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// PostRepository defines the store operations for trip posts.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error

	IncrementViews(ctx context.Context, id string) error
	// UpdateReactions persists both reaction sets in one write and returns the
	// updated post.
	UpdateReactions(ctx context.Context, id string, r entity.Reactions) (*entity.Post, error)
}
