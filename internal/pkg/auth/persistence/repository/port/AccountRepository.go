package repository

import (
	"context"

	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
)

// AccountRepository defines persistence for accounts and their page links.
// Lookups that miss return (nil, nil) rather than an error so callers can
// decide whether absence is exceptional.
type AccountRepository interface {
	Create(ctx context.Context, a auth.Account) (string, error)
	FindByEmail(ctx context.Context, email string) (*auth.Account, error)
	FindByID(ctx context.Context, id string) (*auth.Account, error)

	// FindByPageID is the page directory: it resolves the account owning the
	// given external page id, with Page populated. Nil when no account holds
	// the page.
	FindByPageID(ctx context.Context, pageID string) (*auth.Account, error)

	UpsertPageLink(ctx context.Context, link auth.PageLink) error
	GetPageLink(ctx context.Context, accountID string) (*auth.PageLink, error)
	DeletePageLink(ctx context.Context, accountID string) error
}
