package usecase

import (
	"context"
	"fmt"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/port"
)

// GetMessagesInput identifies the conversation and the caller claiming it.
type GetMessagesInput struct {
	ConversationID string
	AccountID      string
}

// GetMessagesUseCase fetches a conversation's messages in timestamp order
// after verifying the caller owns it.
type GetMessagesUseCase struct {
	Conversations repository.ConversationRepository
	Messages      repository.MessageRepository
}

func NewGetMessagesUseCase(conversations repository.ConversationRepository, messages repository.MessageRepository) *GetMessagesUseCase {
	return &GetMessagesUseCase{Conversations: conversations, Messages: messages}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]inbox.Message, error) {
	if in.ConversationID == "" || in.AccountID == "" {
		return nil, fmt.Errorf("conversationId and accountId are required")
	}

	conv, err := uc.Conversations.FindByIDForAccount(ctx, in.ConversationID, in.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	msgs, err := uc.Messages.ListByConversation(ctx, in.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
