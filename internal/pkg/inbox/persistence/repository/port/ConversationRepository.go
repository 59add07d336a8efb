package repository

import (
	"context"
	"time"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
)

// ConversationRepository is the durable conversation store. Lookups that miss
// return (nil, nil).
type ConversationRepository interface {
	Create(ctx context.Context, c inbox.Conversation) (string, error)

	// FindLatest returns the most recent conversation for the
	// (account, page, sender) tuple, open or not; the thread resolver applies
	// the attachment window.
	FindLatest(ctx context.Context, accountID, pageID, senderID string) (*inbox.Conversation, error)

	// FindByIDForAccount resolves a conversation only when owned by the
	// account; nil otherwise.
	FindByIDForAccount(ctx context.Context, id, accountID string) (*inbox.Conversation, error)

	// ListByAccount returns the account's conversations newest-first.
	ListByAccount(ctx context.Context, accountID string) ([]inbox.Conversation, error)

	// TouchLastMessage advances the conversation's lastMessageAt watermark.
	TouchLastMessage(ctx context.Context, id string, ts time.Time) error
}
