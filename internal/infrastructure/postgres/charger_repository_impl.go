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

type ChargerRepository struct {
	pool *pgxpool.Pool
}

func NewChargerRepository(pool *pgxpool.Pool) *ChargerRepository {
	return &ChargerRepository{pool: pool}
}

const chargerColumns = `
	id, user_id, COALESCE(post_id::text, ''), title, description, rating,
	charger_info, sequence_number, battery_level, avg_consumption, is_assigned,
	created_at, updated_at`

func scanCharger(row pgx.Row) (*entity.EvCharger, error) {
	c := &entity.EvCharger{}
	err := row.Scan(&c.ID, &c.UserID, &c.PostID, &c.Title, &c.Description,
		&c.Rating, &c.ChargerInfo, &c.SequenceNumber, &c.BatteryLevel,
		&c.AvgConsumption, &c.IsAssigned, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ChargerRepository) Create(ctx context.Context, c *entity.EvCharger) error {
	var postID any
	if c.PostID != "" {
		postID = c.PostID
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO chargers (user_id, post_id, title, description, rating,
			charger_info, sequence_number, battery_level, avg_consumption, is_assigned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, c.UserID, postID, c.Title, c.Description, c.Rating, c.ChargerInfo,
		c.SequenceNumber, c.BatteryLevel, c.AvgConsumption, c.IsAssigned)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ChargerRepository) GetByID(ctx context.Context, id string) (*entity.EvCharger, error) {
	return scanCharger(r.pool.QueryRow(ctx, `SELECT`+chargerColumns+` FROM chargers WHERE id = $1`, id))
}

func (r *ChargerRepository) ListByPost(ctx context.Context, postID string) ([]*entity.EvCharger, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+chargerColumns+` FROM chargers WHERE post_id = $1 ORDER BY sequence_number`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chargers []*entity.EvCharger
	for rows.Next() {
		c, err := scanCharger(rows)
		if err != nil {
			return nil, err
		}
		chargers = append(chargers, c)
	}
	return chargers, rows.Err()
}

func (r *ChargerRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM chargers WHERE post_id = $1`, postID).Scan(&n)
	return n, err
}

func (r *ChargerRepository) Update(ctx context.Context, c *entity.EvCharger) error {
	c.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE chargers
		SET title = $1, description = $2, rating = $3, charger_info = $4,
		    battery_level = $5, avg_consumption = $6, updated_at = $7
		WHERE id = $8
	`, c.Title, c.Description, c.Rating, c.ChargerInfo, c.BatteryLevel,
		c.AvgConsumption, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChargerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM chargers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChargerRepository) AssignToPost(ctx context.Context, id, postID string, sequence int) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE chargers
		SET post_id = $1, sequence_number = $2, is_assigned = true, updated_at = now()
		WHERE id = $3
	`, postID, sequence, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChargerRepository) DeleteUnassigned(ctx context.Context) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM chargers WHERE is_assigned = false`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.ChargerRepository = (*ChargerRepository)(nil)
