package usecase

import (
	"time"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"
)

// Publisher is the fan-out contract the pipelines need. *realtime.Hub
// satisfies it.
type Publisher interface {
	Publish(accountID string, ev realtime.Event) int
}

// Frame types pushed to UI sessions.
const (
	EventNewMessage         = "newMessage"
	EventConversationUpdate = "conversationUpdate"
)

// MessagePayload is the wire shape of a message inside a newMessage frame.
type MessagePayload struct {
	ID        string    `json:"id,omitempty"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsEcho    bool      `json:"isEcho"`
}

// NewMessageEvent notifies sessions of a freshly persisted message.
type NewMessageEvent struct {
	ConversationID string         `json:"conversationId"`
	Message        MessagePayload `json:"message"`
}

// ConversationUpdateEvent refreshes a conversation's list entry.
type ConversationUpdateEvent struct {
	ConversationID string    `json:"conversationId"`
	LastMessageAt  time.Time `json:"lastMessageAt"`
	SenderName     string    `json:"senderName"`
	SenderPicture  string    `json:"senderPicture"`
}
