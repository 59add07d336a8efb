package usecase

import (
	"context"
	"fmt"

	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
	authrepo "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
)

// GetPageLinkUseCase fetches the account's current page link, nil when none.
type GetPageLinkUseCase struct {
	Accounts authrepo.AccountRepository
}

func NewGetPageLinkUseCase(accounts authrepo.AccountRepository) *GetPageLinkUseCase {
	return &GetPageLinkUseCase{Accounts: accounts}
}

func (uc *GetPageLinkUseCase) Execute(ctx context.Context, accountID string) (*auth.PageLink, error) {
	if accountID == "" {
		return nil, fmt.Errorf("accountId is required")
	}
	link, err := uc.Accounts.GetPageLink(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return link, nil
}
