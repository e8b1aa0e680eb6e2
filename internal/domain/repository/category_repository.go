package repository

import (
	"context"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// CategoryRepository defines the store operations for post categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByTitle(ctx context.Context, title string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}
