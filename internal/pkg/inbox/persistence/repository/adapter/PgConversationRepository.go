package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
)

type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

const conversationColumns = `id::text, account_id::text, page_id, sender_id, sender_name, sender_picture, last_message_at, created_at`

func (r *PgConversationRepository) Create(ctx context.Context, c inbox.Conversation) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgConversationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO helpdesk.conversation (account_id, page_id, sender_id, sender_name, sender_picture, last_message_at, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, c.AccountID, c.PageID, c.SenderID, c.SenderName, c.SenderPicture, c.LastMessageAt, c.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgConversationRepository) FindLatest(ctx context.Context, accountID, pageID, senderID string) (*inbox.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT `+conversationColumns+`
		FROM helpdesk.conversation
		WHERE account_id = $1::uuid AND page_id = $2 AND sender_id = $3
		ORDER BY last_message_at DESC
		LIMIT 1
	`, accountID, pageID, senderID)
	return scanConversation(row)
}

func (r *PgConversationRepository) FindByIDForAccount(ctx context.Context, id, accountID string) (*inbox.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT `+conversationColumns+`
		FROM helpdesk.conversation
		WHERE id = $1::uuid AND account_id = $2::uuid
	`, id, accountID)
	return scanConversation(row)
}

func (r *PgConversationRepository) ListByAccount(ctx context.Context, accountID string) ([]inbox.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+conversationColumns+`
		FROM helpdesk.conversation
		WHERE account_id = $1::uuid
		ORDER BY last_message_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []inbox.Conversation
	for rows.Next() {
		var c inbox.Conversation
		if err := rows.Scan(&c.ID, &c.AccountID, &c.PageID, &c.SenderID, &c.SenderName, &c.SenderPicture, &c.LastMessageAt, &c.CreatedAt); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *PgConversationRepository) TouchLastMessage(ctx context.Context, id string, ts time.Time) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE helpdesk.conversation
		SET last_message_at = $2
		WHERE id = $1::uuid
	`, id, ts)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanConversation(row pgx.Row) (*inbox.Conversation, error) {
	var c inbox.Conversation
	err := row.Scan(&c.ID, &c.AccountID, &c.PageID, &c.SenderID, &c.SenderName, &c.SenderPicture, &c.LastMessageAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
