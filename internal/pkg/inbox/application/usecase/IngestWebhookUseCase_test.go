package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/cache/port"
	graphport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/port"
	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
	authadapter "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/adapter"
	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/adapter"
)

type ingestHarness struct {
	uc       *IngestWebhookUseCase
	accounts *authadapter.MemoryAccountRepository
	convs    *adapter.MemoryConversationRepository
	msgs     *adapter.MemoryMessageRepository
	events   *fakePublisher
	acctID   string
}

func newIngestHarness(t *testing.T, gw *fakeGateway, cache *fakeCache) *ingestHarness {
	t.Helper()

	accounts := authadapter.NewMemoryAccountRepository()
	id, err := accounts.Create(context.Background(), auth.Account{
		Name: "Op", Email: "op@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := accounts.UpsertPageLink(context.Background(), auth.PageLink{
		AccountID: id, PageID: "P1", PageName: "Page One",
		AccessToken: "tok", ConnectedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("link page: %v", err)
	}

	convs := adapter.NewMemoryConversationRepository()
	msgs := adapter.NewMemoryMessageRepository()
	events := &fakePublisher{}

	// Keep a nil *fakeCache out of the Cache interface.
	var c cacheport.Cache
	if cache != nil {
		c = cache
	}
	resolver := NewResolveThreadUseCase(convs, gw, c, nil)

	return &ingestHarness{
		uc:       NewIngestWebhookUseCase(accounts, resolver, convs, msgs, c, events, nil),
		accounts: accounts,
		convs:    convs,
		msgs:     msgs,
		events:   events,
		acctID:   id,
	}
}

func inboundEvent(sender, page, mid, text string, ts time.Time) inbox.MessagingEvent {
	return inbox.MessagingEvent{
		Sender:    inbox.Endpoint{ID: sender},
		Recipient: inbox.Endpoint{ID: page},
		Timestamp: ts.UnixMilli(),
		Message:   &inbox.MessageEventBody{MID: mid, Text: text},
	}
}

func pageBatch(events ...inbox.MessagingEvent) inbox.WebhookPayload {
	return inbox.WebhookPayload{
		Object:  "page",
		Entries: []inbox.WebhookEntry{{PageID: "P1", Messaging: events}},
	}
}

func TestIngest_PersistsAndFansOut(t *testing.T) {
	gw := &fakeGateway{profile: graphport.Profile{Name: "Jane Roe", PictureURL: "http://pic"}}
	h := newIngestHarness(t, gw, nil)

	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	if err := h.uc.Execute(context.Background(), pageBatch(inboundEvent("U1", "P1", "m1", "hi", ts))); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	convs, _ := h.convs.ListByAccount(context.Background(), h.acctID)
	if len(convs) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(convs))
	}
	conv := convs[0]
	if conv.SenderName != "Jane Roe" || !conv.LastMessageAt.Equal(ts) {
		t.Fatalf("unexpected conversation %+v", conv)
	}

	msgs, _ := h.msgs.ListByConversation(context.Background(), conv.ID)
	if len(msgs) != 1 || msgs[0].Text != "hi" || msgs[0].IsEcho {
		t.Fatalf("unexpected messages %+v", msgs)
	}

	evs := h.events.all()
	if len(evs) != 2 {
		t.Fatalf("expected 2 fan-out events, got %d", len(evs))
	}
	if evs[0].Event.Type != EventNewMessage || evs[1].Event.Type != EventConversationUpdate {
		t.Fatalf("fan-out order wrong: %s then %s", evs[0].Event.Type, evs[1].Event.Type)
	}
	if evs[0].AccountID != h.acctID {
		t.Fatalf("fan-out targeted %q, want %q", evs[0].AccountID, h.acctID)
	}
}

func TestIngest_SkipsEchoesAndNonMessages(t *testing.T) {
	gw := &fakeGateway{}
	h := newIngestHarness(t, gw, nil)

	ts := time.Now().UTC()
	echo := inboundEvent("P1", "U1", "m-echo", "echo", ts)
	echo.Message.IsEcho = true
	noMessage := inbox.MessagingEvent{
		Sender:    inbox.Endpoint{ID: "U1"},
		Recipient: inbox.Endpoint{ID: "P1"},
		Timestamp: ts.UnixMilli(),
	}

	if err := h.uc.Execute(context.Background(), pageBatch(echo, noMessage)); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if convs, _ := h.convs.ListByAccount(context.Background(), h.acctID); len(convs) != 0 {
		t.Fatalf("echo/non-message events must not create conversations, got %d", len(convs))
	}
}

func TestIngest_UnknownPageSkippedBatchContinues(t *testing.T) {
	gw := &fakeGateway{profile: graphport.Profile{Name: "Jane Roe"}}
	h := newIngestHarness(t, gw, nil)

	ts := time.Now().UTC()
	batch := pageBatch(
		inboundEvent("U9", "P-unknown", "m1", "lost", ts),
		inboundEvent("U1", "P1", "m2", "found", ts),
	)
	if err := h.uc.Execute(context.Background(), batch); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	convs, _ := h.convs.ListByAccount(context.Background(), h.acctID)
	if len(convs) != 1 {
		t.Fatalf("expected the known-page event to be processed, got %d conversations", len(convs))
	}
	msgs, _ := h.msgs.ListByConversation(context.Background(), convs[0].ID)
	if len(msgs) != 1 || msgs[0].Text != "found" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
}

// failingFirstAppend fails the first Append, then delegates.
type failingFirstAppend struct {
	*adapter.MemoryMessageRepository
	failed bool
}

func (f *failingFirstAppend) Append(ctx context.Context, m inbox.Message) (string, error) {
	if !f.failed {
		f.failed = true
		return "", errors.New("store down")
	}
	return f.MemoryMessageRepository.Append(ctx, m)
}

func TestIngest_PartialFailureIsolated(t *testing.T) {
	gw := &fakeGateway{profile: graphport.Profile{Name: "Jane Roe"}}
	h := newIngestHarness(t, gw, nil)
	flaky := &failingFirstAppend{MemoryMessageRepository: h.msgs}
	h.uc.Messages = flaky

	ts := time.Now().UTC()
	batch := pageBatch(
		inboundEvent("U1", "P1", "m1", "first", ts),
		inboundEvent("U1", "P1", "m2", "second", ts.Add(time.Second)),
	)
	if err := h.uc.Execute(context.Background(), batch); err != nil {
		t.Fatalf("batch must not fail on a single bad event: %v", err)
	}

	convs, _ := h.convs.ListByAccount(context.Background(), h.acctID)
	if len(convs) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(convs))
	}
	msgs, _ := h.msgs.ListByConversation(context.Background(), convs[0].ID)
	if len(msgs) != 1 || msgs[0].Text != "second" {
		t.Fatalf("expected only the second event persisted, got %+v", msgs)
	}
}

func TestIngest_UnsupportedPayload(t *testing.T) {
	h := newIngestHarness(t, &fakeGateway{}, nil)

	err := h.uc.Execute(context.Background(), inbox.WebhookPayload{Object: "instagram"})
	if !errors.Is(err, ErrUnsupportedPayload) {
		t.Fatalf("expected ErrUnsupportedPayload, got %v", err)
	}
}

func TestIngest_NoPublisherStillPersists(t *testing.T) {
	gw := &fakeGateway{profile: graphport.Profile{Name: "Jane Roe"}}
	h := newIngestHarness(t, gw, nil)
	h.uc.Events = nil

	ts := time.Now().UTC()
	if err := h.uc.Execute(context.Background(), pageBatch(inboundEvent("U1", "P1", "m1", "hi", ts))); err != nil {
		t.Fatalf("ingest without publisher: %v", err)
	}

	convs, _ := h.convs.ListByAccount(context.Background(), h.acctID)
	if len(convs) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(convs))
	}
	msgs, _ := h.msgs.ListByConversation(context.Background(), convs[0].ID)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}

func TestIngest_RedeliveredEventDeduped(t *testing.T) {
	gw := &fakeGateway{profile: graphport.Profile{Name: "Jane Roe"}}
	cache := newFakeCache()
	h := newIngestHarness(t, gw, cache)

	ts := time.Now().UTC()
	ev := inboundEvent("U1", "P1", "m1", "hi", ts)

	if err := h.uc.Execute(context.Background(), pageBatch(ev)); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := h.uc.Execute(context.Background(), pageBatch(ev)); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	convs, _ := h.convs.ListByAccount(context.Background(), h.acctID)
	msgs, _ := h.msgs.ListByConversation(context.Background(), convs[0].ID)
	if len(msgs) != 1 {
		t.Fatalf("redelivered event must be a no-op, got %d messages", len(msgs))
	}
}
