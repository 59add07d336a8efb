package usecase

import (
	"context"
	"fmt"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/port"
)

// ListConversationsUseCase returns the account's conversations newest-first.
type ListConversationsUseCase struct {
	Repo repository.ConversationRepository
}

func NewListConversationsUseCase(repo repository.ConversationRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, accountID string) ([]inbox.Conversation, error) {
	if accountID == "" {
		return nil, fmt.Errorf("accountId is required")
	}
	convs, err := uc.Repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return convs, nil
}
