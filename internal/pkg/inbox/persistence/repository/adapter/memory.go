package adapter

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
)

// In-memory conversation and message stores for tests and local development.
// Both preserve the same lookup semantics as the Postgres adapters, including
// the timestamp-then-insertion-order message sort.

type MemoryConversationRepository struct {
	mu     sync.RWMutex
	convs  map[string]*inbox.Conversation
	nextID int
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{convs: make(map[string]*inbox.Conversation)}
}

func (r *MemoryConversationRepository) Create(ctx context.Context, c inbox.Conversation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = fmt.Sprintf("conv-%d", r.nextID)
	cp := c
	r.convs[c.ID] = &cp
	return c.ID, nil
}

func (r *MemoryConversationRepository) FindLatest(ctx context.Context, accountID, pageID, senderID string) (*inbox.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *inbox.Conversation
	for _, c := range r.convs {
		if c.AccountID != accountID || c.PageID != pageID || c.SenderID != senderID {
			continue
		}
		if latest == nil || c.LastMessageAt.After(latest.LastMessageAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *MemoryConversationRepository) FindByIDForAccount(ctx context.Context, id, accountID string) (*inbox.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.convs[id]
	if !ok || c.AccountID != accountID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *MemoryConversationRepository) ListByAccount(ctx context.Context, accountID string) ([]inbox.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []inbox.Conversation
	for _, c := range r.convs {
		if c.AccountID == accountID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

func (r *MemoryConversationRepository) TouchLastMessage(ctx context.Context, id string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	if !ok {
		return fmt.Errorf("memory: conversation %s not found", id)
	}
	c.LastMessageAt = ts
	return nil
}

type MemoryMessageRepository struct {
	mu     sync.RWMutex
	msgs   []inbox.Message
	nextID int
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

func (r *MemoryMessageRepository) Append(ctx context.Context, m inbox.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = fmt.Sprintf("msg-%d", r.nextID)
	r.msgs = append(r.msgs, m)
	return m.ID, nil
}

func (r *MemoryMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]inbox.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []inbox.Message
	for _, m := range r.msgs {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	// Append order is insertion order, so a stable sort by timestamp keeps
	// insertion order for ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
