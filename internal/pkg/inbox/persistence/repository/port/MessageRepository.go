package repository

import (
	"context"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
)

// MessageRepository is the append-only message log.
type MessageRepository interface {
	Append(ctx context.Context, m inbox.Message) (string, error)

	// ListByConversation returns messages sorted ascending by timestamp,
	// ties broken by insertion order.
	ListByConversation(ctx context.Context, conversationID string) ([]inbox.Message, error)
}
