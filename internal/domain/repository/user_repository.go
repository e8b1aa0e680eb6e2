package repository

import (
	"context"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

// UserRepository defines the store operations for user records, including the
// atomic strike counters used by the moderation guard. Increment operations
// apply the counter bump and the threshold block flag in a single write and
// return the post-update values, so concurrent calls can never lose a strike.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error

	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetProfilePhoto(ctx context.Context, id, url string) error
	SetCoverPhoto(ctx context.Context, id, url string) error
	SetVerified(ctx context.Context, id string) error
	AddProfileViewer(ctx context.Context, id, viewerID string) error

	Follow(ctx context.Context, targetID, followerID string) error
	Unfollow(ctx context.Context, targetID, followerID string) error

	// IncrementWarnings bumps the profanity strike counter; the account is
	// blocked in the same statement once the counter reaches its threshold.
	IncrementWarnings(ctx context.Context, id string) (count int, blocked bool, err error)
	// IncrementLoginWarnings is the independent counter for failed logins.
	IncrementLoginWarnings(ctx context.Context, id string) (count int, blocked bool, err error)
	ResetLoginWarnings(ctx context.Context, id string) error

	Block(ctx context.Context, id string) error
	// Unblock clears the flag and zeroes both strike counters.
	Unblock(ctx context.Context, id string) error
}
