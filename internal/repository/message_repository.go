package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// MessageRepository encapsulates message persistence. Replies live inside
// the parent message row as a JSONB array.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	AppendReply(ctx context.Context, messageID string, reply domain.Reply) error
	ListByAccount(ctx context.Context, accountID string) ([]domain.Message, error)
	Delete(ctx context.Context, id string) error
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository instantiates repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (from_account_id, to_account_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		message.FromAccountID,
		message.ToAccountID,
		message.Content,
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *messageRepository) AppendReply(ctx context.Context, messageID string, reply domain.Reply) error {
	const query = `
        UPDATE messages SET replies = replies || $2::jsonb
        WHERE id=$1`

	payload, err := json.Marshal(reply)
	if err != nil {
		return err
	}

	cmd, err := r.pool.Exec(ctx, query, messageID, payload)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Message, error) {
	const query = `
        SELECT id, from_account_id, to_account_id, content, replies, created_at
        FROM messages
        WHERE from_account_id=$1 OR to_account_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var message domain.Message
		var replies []byte
		if err := rows.Scan(
			&message.ID,
			&message.FromAccountID,
			&message.ToAccountID,
			&message.Content,
			&replies,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(replies, &message.Replies); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
