package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	cacheport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/cache/port"
	graphport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/port"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"
	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
)

// Shared fakes for the use case tests. Repositories come from the in-memory
// adapters; only the external collaborators are faked here.

type sentCall struct {
	PageID, RecipientID, Text string
}

type fakeGateway struct {
	mu           sync.Mutex
	profile      graphport.Profile
	profileErr   error
	sendErr      error
	sent         []sentCall
	profileCalls int
}

func (f *fakeGateway) FetchProfile(ctx context.Context, userID, accessToken string) (graphport.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls++
	if f.profileErr != nil {
		return graphport.Profile{}, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeGateway) SendMessage(ctx context.Context, pageID, recipientID, text, accessToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentCall{PageID: pageID, RecipientID: recipientID, Text: text})
	return nil
}

func (f *fakeGateway) SubscribePage(ctx context.Context, pageID, accessToken string) error {
	return nil
}

type published struct {
	AccountID string
	Event     realtime.Event
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
}

func (f *fakePublisher) Publish(accountID string, ev realtime.Event) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, published{AccountID: accountID, Event: ev})
	return 1
}

func (f *fakePublisher) all() []published {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]published, len(f.events))
	copy(out, f.events)
	return out
}

type fakeCache struct {
	mu sync.Mutex
	m  map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{m: make(map[string]string)}
}

var _ cacheport.Cache = (*fakeCache)(nil)

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.m[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[key] = value
	return nil
}

func (f *fakeCache) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.m[key]; ok {
		return false, nil
	}
	f.m[key] = value
	return true, nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.m[k]; ok {
			delete(f.m, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }
func (f *fakeCache) Close() error                   { return nil }

var errBoom = errors.New("boom")

func testAccount(id, pageID string) *auth.Account {
	return &auth.Account{
		ID:    id,
		Name:  "Helpdesk Operator",
		Email: id + "@example.com",
		Page: &auth.PageLink{
			AccountID:   id,
			PageID:      pageID,
			PageName:    "Test Page",
			AccessToken: "page-token",
			ConnectedAt: time.Now().UTC(),
		},
	}
}
