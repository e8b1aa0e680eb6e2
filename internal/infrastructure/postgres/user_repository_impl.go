package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `
	id, first_name, last_name, email, password_hash, bio, profile_picture,
	cover_photo, is_admin, is_blocked, is_account_verified, warnings_count,
	login_warnings_count, followers, following, viewed_by, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.Bio, &u.ProfilePicture, &u.CoverPhoto, &u.IsAdmin, &u.IsBlocked,
		&u.IsAccountVerified, &u.WarningsCount, &u.LoginWarningsCount,
		&u.Followers, &u.Following, &u.ViewedBy, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, profile_picture,
			cover_photo, is_admin, is_account_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, u.FirstName, u.LastName, u.Email, u.Password, u.ProfilePicture, u.CoverPhoto,
		u.IsAdmin, u.IsAccountVerified)
	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, bio = $4, updated_at = $5
		WHERE id = $6
	`, u.FirstName, u.LastName, u.Email, u.Bio, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, passwordHash, id)
}

func (r *UserRepository) SetProfilePhoto(ctx context.Context, id, url string) error {
	return r.exec(ctx, `UPDATE users SET profile_picture = $1, updated_at = now() WHERE id = $2`, url, id)
}

func (r *UserRepository) SetCoverPhoto(ctx context.Context, id, url string) error {
	return r.exec(ctx, `UPDATE users SET cover_photo = $1, updated_at = now() WHERE id = $2`, url, id)
}

func (r *UserRepository) SetVerified(ctx context.Context, id string) error {
	return r.exec(ctx, `UPDATE users SET is_account_verified = true, updated_at = now() WHERE id = $1`, id)
}

func (r *UserRepository) AddProfileViewer(ctx context.Context, id, viewerID string) error {
	// zero rows affected means the viewer was already recorded; not an error
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET viewed_by = array_append(viewed_by, $1), updated_at = now()
		WHERE id = $2 AND NOT ($1 = ANY(viewed_by))
	`, viewerID, id)
	return err
}

func (r *UserRepository) Follow(ctx context.Context, targetID, followerID string) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		UPDATE users SET followers = array_append(followers, $1), updated_at = now()
		WHERE id = $2 AND NOT ($1 = ANY(followers))`, followerID, targetID)
	batch.Queue(`
		UPDATE users SET following = array_append(following, $1), updated_at = now()
		WHERE id = $2 AND NOT ($1 = ANY(following))`, targetID, followerID)
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *UserRepository) Unfollow(ctx context.Context, targetID, followerID string) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		UPDATE users SET followers = array_remove(followers, $1), updated_at = now()
		WHERE id = $2`, followerID, targetID)
	batch.Queue(`
		UPDATE users SET following = array_remove(following, $1), updated_at = now()
		WHERE id = $2`, targetID, followerID)
	return r.pool.SendBatch(ctx, batch).Close()
}

// IncrementWarnings bumps the profanity strike counter and raises the block
// flag once the threshold is reached, all in one statement so concurrent
// screens against the same user can never lose an increment.
func (r *UserRepository) IncrementWarnings(ctx context.Context, id string) (int, bool, error) {
	return r.incrementCounter(ctx, id, "warnings_count", entity.WarningLimit)
}

// IncrementLoginWarnings is the independent counter for failed login attempts.
func (r *UserRepository) IncrementLoginWarnings(ctx context.Context, id string) (int, bool, error) {
	return r.incrementCounter(ctx, id, "login_warnings_count", entity.LoginAttemptLimit)
}

func (r *UserRepository) incrementCounter(ctx context.Context, id, column string, threshold int) (int, bool, error) {
	// column comes from the two callers above, never from input
	var count int
	var blocked bool
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET `+column+` = `+column+` + 1,
		    is_blocked = is_blocked OR (`+column+` + 1 >= $2),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+column+`, is_blocked
	`, id, threshold).Scan(&count, &blocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, repository.ErrNotFound
		}
		return 0, false, err
	}
	return count, blocked, nil
}

func (r *UserRepository) ResetLoginWarnings(ctx context.Context, id string) error {
	return r.exec(ctx, `UPDATE users SET login_warnings_count = 0, updated_at = now() WHERE id = $1`, id)
}

func (r *UserRepository) Block(ctx context.Context, id string) error {
	return r.exec(ctx, `UPDATE users SET is_blocked = true, updated_at = now() WHERE id = $1`, id)
}

func (r *UserRepository) Unblock(ctx context.Context, id string) error {
	return r.exec(ctx, `
		UPDATE users
		SET is_blocked = false, warnings_count = 0, login_warnings_count = 0, updated_at = now()
		WHERE id = $1`, id)
}

func (r *UserRepository) exec(ctx context.Context, sql string, args ...any) error {
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
