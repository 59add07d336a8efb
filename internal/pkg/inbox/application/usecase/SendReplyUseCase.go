package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	graphport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/port"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"
	authrepo "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/port"
)

// SendReplyInput carries an operator reply to an owned conversation.
type SendReplyInput struct {
	AccountID      string
	ConversationID string
	Text           string
}

// SendReplyUseCase is the outbound relay: it delivers the reply through the
// Graph API first and persists only after confirmed delivery, so a failed
// send leaves no partial state. Fan-out fires after persistence.
type SendReplyUseCase struct {
	Accounts      authrepo.AccountRepository
	Conversations repository.ConversationRepository
	Messages      repository.MessageRepository
	Graph         graphport.Gateway
	Events        Publisher
	SendTimeout   time.Duration
}

func NewSendReplyUseCase(
	accounts authrepo.AccountRepository,
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
	gateway graphport.Gateway,
	events Publisher,
	sendTimeout time.Duration,
) *SendReplyUseCase {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &SendReplyUseCase{
		Accounts:      accounts,
		Conversations: conversations,
		Messages:      messages,
		Graph:         gateway,
		Events:        events,
		SendTimeout:   sendTimeout,
	}
}

// Execute returns the persisted echo message on success.
func (uc *SendReplyUseCase) Execute(ctx context.Context, in SendReplyInput) (*inbox.Message, error) {
	text := strings.TrimSpace(in.Text)
	if in.ConversationID == "" || text == "" {
		return nil, fmt.Errorf("conversationId and text are required")
	}

	conv, err := uc.Conversations.FindByIDForAccount(ctx, in.ConversationID, in.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	link, err := uc.Accounts.GetPageLink(ctx, in.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if link == nil || link.AccessToken == "" {
		return nil, ErrPageNotLinked
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.SendTimeout)
	defer cancel()
	if err := uc.Graph.SendMessage(sendCtx, conv.PageID, conv.SenderID, text, link.AccessToken); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	msg, err := inbox.NewMessage(inbox.Message{
		ConversationID: conv.ID,
		SenderID:       conv.PageID,
		Text:           text,
		Timestamp:      time.Now().UTC(),
		IsEcho:         true,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Messages.Append(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	if err := uc.Conversations.TouchLastMessage(ctx, conv.ID, msg.Timestamp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Events != nil {
		uc.Events.Publish(in.AccountID, realtime.Event{Type: EventNewMessage, Data: NewMessageEvent{
			ConversationID: conv.ID,
			Message: MessagePayload{
				ID:        msg.ID,
				SenderID:  msg.SenderID,
				Text:      msg.Text,
				Timestamp: msg.Timestamp,
				IsEcho:    true,
			},
		}})
		uc.Events.Publish(in.AccountID, realtime.Event{Type: EventConversationUpdate, Data: ConversationUpdateEvent{
			ConversationID: conv.ID,
			LastMessageAt:  msg.Timestamp,
			SenderName:     conv.SenderName,
			SenderPicture:  conv.SenderPicture,
		}})
	}

	return msg, nil
}
