package inbox

import (
	"errors"
	"time"
)

// ThreadWindow is the inactivity window after which an inbound message opens
// a new conversation instead of attaching to the latest one.
const ThreadWindow = 24 * time.Hour

// PlaceholderSenderName is used when the correspondent's profile cannot be
// fetched from the Graph API.
const PlaceholderSenderName = "Unknown Sender"

// Conversation is one time-bounded exchange between a linked page and one
// external correspondent. Multiple rows may exist over time for the same
// (account, page, sender) tuple, but at most one is open at any instant.
type Conversation struct {
	ID            string    `db:"id"`
	AccountID     string    `db:"account_id"`
	PageID        string    `db:"page_id"`
	SenderID      string    `db:"sender_id"`
	SenderName    string    `db:"sender_name"`
	SenderPicture string    `db:"sender_picture"`
	LastMessageAt time.Time `db:"last_message_at"`
	CreatedAt     time.Time `db:"created_at"`
}

// NewConversation validates and normalizes a conversation about to be created.
func NewConversation(c Conversation) (*Conversation, error) {
	if c.AccountID == "" || c.PageID == "" || c.SenderID == "" {
		return nil, errors.New("account_id, page_id and sender_id are required")
	}
	if c.SenderName == "" {
		c.SenderName = PlaceholderSenderName
	}
	if c.LastMessageAt.IsZero() {
		c.LastMessageAt = time.Now().UTC()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return &c, nil
}

// OpenAt reports whether the conversation is still eligible for attachment
// for a message carrying the given timestamp. The boundary is inclusive:
// exactly 24h of silence still attaches.
func (c *Conversation) OpenAt(ts time.Time) bool {
	return !c.LastMessageAt.Before(ts.Add(-ThreadWindow))
}
