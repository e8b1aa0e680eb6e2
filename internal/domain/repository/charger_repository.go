package repository

import (
	"context"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// ChargerRepository defines the store operations for EV chargers.
type ChargerRepository interface {
	Create(ctx context.Context, c *entity.EvCharger) error
	GetByID(ctx context.Context, id string) (*entity.EvCharger, error)
	ListByPost(ctx context.Context, postID string) ([]*entity.EvCharger, error)
	CountByPost(ctx context.Context, postID string) (int, error)
	Update(ctx context.Context, c *entity.EvCharger) error
	Delete(ctx context.Context, id string) error

	// AssignToPost attaches a charger to a post at the given route position.
	AssignToPost(ctx context.Context, id, postID string, sequence int) error
	// DeleteUnassigned purges chargers never attached to a post (admin action).
	DeleteUnassigned(ctx context.Context) (int64, error)
}
