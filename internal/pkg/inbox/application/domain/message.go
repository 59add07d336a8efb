package inbox

import (
	"errors"
	"strings"
	"time"
)

// Message is an immutable log entry in a conversation. SenderID is the
// external correspondent id for inbound messages and the page id for echoes.
type Message struct {
	ID             string    `db:"id"`
	ConversationID string    `db:"conversation_id"`
	SenderID       string    `db:"sender_id"`
	Text           string    `db:"body"`
	Timestamp      time.Time `db:"sent_at"`
	IsEcho         bool      `db:"is_echo"`
}

// NewMessage validates a message about to be appended.
func NewMessage(m Message) (*Message, error) {
	if m.ConversationID == "" || m.SenderID == "" {
		return nil, errors.New("conversation_id and sender_id are required")
	}
	m.Text = strings.TrimSpace(m.Text)
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return &m, nil
}
