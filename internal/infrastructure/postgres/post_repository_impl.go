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

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `
	id, user_id, title, description, main_category, car_name,
	usable_battery_size, efficiency, starting_location, end_location,
	recommended_chargers, image, is_public, num_views, likes, dis_likes,
	created_at, updated_at`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.MainCategory,
		&p.CarName, &p.UsableBatterySize, &p.Efficiency, &p.StartingLocation,
		&p.EndLocation, &p.RecommendedChargers, &p.Image, &p.IsPublic,
		&p.NumViews, &p.Reactions.Likes, &p.Reactions.DisLikes,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, title, description, main_category, car_name,
			usable_battery_size, efficiency, starting_location, end_location,
			recommended_chargers, image, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Title, p.Description, p.MainCategory, p.CarName,
		p.UsableBatterySize, p.Efficiency, p.StartingLocation, p.EndLocation,
		p.RecommendedChargers, p.Image, p.IsPublic)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, `SELECT`+postColumns+` FROM posts WHERE id = $1`, id))
}

func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+postColumns+` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, description = $2, main_category = $3, car_name = $4,
		    usable_battery_size = $5, efficiency = $6, starting_location = $7,
		    end_location = $8, recommended_chargers = $9, image = $10,
		    is_public = $11, updated_at = $12
		WHERE id = $13
	`, p.Title, p.Description, p.MainCategory, p.CarName, p.UsableBatterySize,
		p.Efficiency, p.StartingLocation, p.EndLocation, p.RecommendedChargers,
		p.Image, p.IsPublic, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE posts SET num_views = num_views + 1 WHERE id = $1`, id)
	return err
}

// UpdateReactions writes both sets in a single statement so the disjointness
// of likes and dis_likes is never observable as violated.
func (r *PostRepository) UpdateReactions(ctx context.Context, id string, reactions entity.Reactions) (*entity.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, `
		UPDATE posts
		SET likes = COALESCE($1::text[], '{}'), dis_likes = COALESCE($2::text[], '{}'), updated_at = now()
		WHERE id = $3
		RETURNING`+postColumns+`
	`, reactions.Likes, reactions.DisLikes, id))
}

var _ repository.PostRepository = (*PostRepository)(nil)
