package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Append(ctx context.Context, m inbox.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgMessageRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO helpdesk.message (conversation_id, sender_id, body, sent_at, is_echo)
		VALUES ($1::uuid, $2, $3, $4, $5)
		RETURNING id::text
	`, m.ConversationID, m.SenderID, m.Text, m.Timestamp, m.IsEcho).Scan(&id)
	return id, err
}

// ListByConversation orders by timestamp with the bigserial seq column
// breaking ties in insertion order.
func (r *PgMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]inbox.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, conversation_id::text, sender_id, body, sent_at, is_echo
		FROM helpdesk.message
		WHERE conversation_id = $1::uuid
		ORDER BY sent_at ASC, seq ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []inbox.Message
	for rows.Next() {
		var m inbox.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Text, &m.Timestamp, &m.IsEcho); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
