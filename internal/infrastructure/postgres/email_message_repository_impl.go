package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type EmailMessageRepository struct {
	pool *pgxpool.Pool
}

func NewEmailMessageRepository(pool *pgxpool.Pool) *EmailMessageRepository {
	return &EmailMessageRepository{pool: pool}
}

func (r *EmailMessageRepository) Create(ctx context.Context, m *entity.EmailMessage) error {
	var sentBy any
	if m.SentBy != "" {
		sentBy = m.SentBy
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO email_messages (from_email, to_email, subject, message, category, sent_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, m.FromEmail, m.ToEmail, m.Subject, m.Message, m.Category, sentBy)
	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *EmailMessageRepository) List(ctx context.Context) ([]*entity.EmailMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, from_email, to_email, subject, message, category,
		       COALESCE(sent_by::text, ''), is_flagged, created_at
		FROM email_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*entity.EmailMessage
	for rows.Next() {
		m := &entity.EmailMessage{}
		if err := rows.Scan(&m.ID, &m.FromEmail, &m.ToEmail, &m.Subject,
			&m.Message, &m.Category, &m.SentBy, &m.IsFlagged, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *EmailMessageRepository) SetFlagged(ctx context.Context, id string, flagged bool) error {
	res, err := r.pool.Exec(ctx, `UPDATE email_messages SET is_flagged = $1 WHERE id = $2`, flagged, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EmailMessageRepository = (*EmailMessageRepository)(nil)
