package usecase

import (
	"context"
	"fmt"

	authrepo "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
)

// DisconnectPageUseCase removes the account's page link. Existing
// conversations are kept; they just can no longer be replied to.
type DisconnectPageUseCase struct {
	Accounts authrepo.AccountRepository
}

func NewDisconnectPageUseCase(accounts authrepo.AccountRepository) *DisconnectPageUseCase {
	return &DisconnectPageUseCase{Accounts: accounts}
}

func (uc *DisconnectPageUseCase) Execute(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("accountId is required")
	}
	if err := uc.Accounts.DeletePageLink(ctx, accountID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
