package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
)

// MemoryAccountRepository is an in-memory AccountRepository for tests and
// local development without Postgres.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*auth.Account // by id
	links    map[string]*auth.PageLink
	nextID   int
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]*auth.Account),
		links:    make(map[string]*auth.PageLink),
	}
}

func (r *MemoryAccountRepository) Create(ctx context.Context, a auth.Account) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return "", errors.New("memory: duplicate email")
		}
	}
	r.nextID++
	a.ID = fmt.Sprintf("acc-%d", r.nextID)
	cp := a
	r.accounts[a.ID] = &cp
	return a.ID, nil
}

func (r *MemoryAccountRepository) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryAccountRepository) FindByID(ctx context.Context, id string) (*auth.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *MemoryAccountRepository) FindByPageID(ctx context.Context, pageID string) (*auth.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *auth.PageLink
	for _, l := range r.links {
		if l.PageID != pageID {
			continue
		}
		if best == nil || l.ConnectedAt.After(best.ConnectedAt) {
			best = l
		}
	}
	if best == nil {
		return nil, nil
	}
	a, ok := r.accounts[best.AccountID]
	if !ok {
		return nil, nil
	}
	cp := *a
	lcp := *best
	cp.Page = &lcp
	return &cp, nil
}

func (r *MemoryAccountRepository) UpsertPageLink(ctx context.Context, link auth.PageLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := link
	r.links[link.AccountID] = &cp
	return nil
}

func (r *MemoryAccountRepository) GetPageLink(ctx context.Context, accountID string) (*auth.PageLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.links[accountID]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *MemoryAccountRepository) DeletePageLink(ctx context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.links, accountID)
	return nil
}
