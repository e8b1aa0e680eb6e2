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

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

const commentColumns = `
	id, post_id, user_id, description, likes, dis_likes, created_at, updated_at`

func scanComment(row pgx.Row) (*entity.Comment, error) {
	c := &entity.Comment{}
	err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Description,
		&c.Reactions.Likes, &c.Reactions.DisLikes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, user_id, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.PostID, c.UserID, c.Description)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, `SELECT`+commentColumns+` FROM comments WHERE id = $1`, id))
}

func (r *CommentRepository) List(ctx context.Context) ([]*entity.Comment, error) {
	return r.queryMany(ctx, `SELECT`+commentColumns+` FROM comments ORDER BY created_at DESC`)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return r.queryMany(ctx, `SELECT`+commentColumns+` FROM comments WHERE post_id = $1 ORDER BY created_at DESC`, postID)
}

func (r *CommentRepository) queryMany(ctx context.Context, sql string, args ...any) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Update(ctx context.Context, c *entity.Comment) error {
	c.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE comments SET description = $1, updated_at = $2 WHERE id = $3
	`, c.Description, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateReactions writes both sets in a single statement so the disjointness
// of likes and dis_likes is never observable as violated.
func (r *CommentRepository) UpdateReactions(ctx context.Context, id string, reactions entity.Reactions) (*entity.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, `
		UPDATE comments
		SET likes = COALESCE($1::text[], '{}'), dis_likes = COALESCE($2::text[], '{}'), updated_at = now()
		WHERE id = $3
		RETURNING`+commentColumns+`
	`, reactions.Likes, reactions.DisLikes, id))
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
