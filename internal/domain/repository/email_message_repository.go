package repository

import (
	"context"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// EmailMessageRepository defines the store operations for sent messages.
type EmailMessageRepository interface {
	Create(ctx context.Context, m *entity.EmailMessage) error
	List(ctx context.Context) ([]*entity.EmailMessage, error)
	SetFlagged(ctx context.Context, id string, flagged bool) error
}
