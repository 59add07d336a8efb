package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	cacheport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/cache/port"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"
	authrepo "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/port"
)

const dedupTTL = 72 * time.Hour

// IngestWebhookUseCase drives the inbound pipeline: for every genuine inbound
// message in the batch it resolves the owning account, threads the message,
// persists it and fans it out. Failures are isolated per event: a bad event
// is logged and skipped, never aborting the batch, so the upstream webhook
// always gets its 200.
type IngestWebhookUseCase struct {
	Accounts      authrepo.AccountRepository
	Resolver      *ResolveThreadUseCase
	Conversations repository.ConversationRepository
	Messages      repository.MessageRepository
	Cache         cacheport.Cache // optional redelivery dedup
	Events        Publisher
	Log           *zap.Logger
}

func NewIngestWebhookUseCase(
	accounts authrepo.AccountRepository,
	resolver *ResolveThreadUseCase,
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
	cache cacheport.Cache,
	events Publisher,
	log *zap.Logger,
) *IngestWebhookUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &IngestWebhookUseCase{
		Accounts:      accounts,
		Resolver:      resolver,
		Conversations: conversations,
		Messages:      messages,
		Cache:         cache,
		Events:        events,
		Log:           log,
	}
}

// Execute processes the batch in delivery order. The only error it returns is
// ErrUnsupportedPayload for non-page bodies; everything else is contained.
func (uc *IngestWebhookUseCase) Execute(ctx context.Context, payload inbox.WebhookPayload) error {
	if !payload.IsPageBatch() {
		return ErrUnsupportedPayload
	}
	for _, entry := range payload.Entries {
		for _, ev := range entry.Messaging {
			if !ev.IsInboundMessage() {
				continue
			}
			uc.processEvent(ctx, ev)
		}
	}
	return nil
}

func (uc *IngestWebhookUseCase) processEvent(ctx context.Context, ev inbox.MessagingEvent) {
	pageID := ev.Recipient.ID
	senderID := ev.Sender.ID
	ts := ev.SentAt()

	if uc.alreadySeen(ctx, ev.Message.MID) {
		uc.Log.Debug("duplicate webhook event skipped", zap.String("mid", ev.Message.MID))
		return
	}

	account, err := uc.Accounts.FindByPageID(ctx, pageID)
	if err != nil {
		uc.Log.Error("page directory lookup failed",
			zap.String("page_id", pageID), zap.Error(err))
		return
	}
	if account == nil || !account.CanSend() {
		uc.Log.Warn("no account or access token for page, event skipped",
			zap.String("page_id", pageID))
		return
	}

	conv, err := uc.Resolver.Execute(ctx, ResolveThreadInput{
		Account:   account,
		SenderID:  senderID,
		Timestamp: ts,
	})
	if err != nil {
		uc.Log.Error("thread resolution failed",
			zap.String("page_id", pageID), zap.String("sender_id", senderID), zap.Error(err))
		return
	}

	msg, err := inbox.NewMessage(inbox.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Text:           ev.Message.Text,
		Timestamp:      ts,
		IsEcho:         false,
	})
	if err != nil {
		uc.Log.Error("invalid inbound message", zap.Error(err))
		return
	}

	id, err := uc.Messages.Append(ctx, *msg)
	if err != nil {
		uc.Log.Error("message append failed",
			zap.String("conversation_id", conv.ID), zap.Error(err))
		return
	}
	msg.ID = id

	if err := uc.Conversations.TouchLastMessage(ctx, conv.ID, ts); err != nil {
		// Message is persisted; still fan out, the watermark catches up on
		// the next event.
		uc.Log.Error("conversation touch failed",
			zap.String("conversation_id", conv.ID), zap.Error(err))
	}
	conv.LastMessageAt = ts

	if uc.Events == nil {
		return
	}
	uc.Events.Publish(account.ID, realtime.Event{Type: EventNewMessage, Data: NewMessageEvent{
		ConversationID: conv.ID,
		Message: MessagePayload{
			ID:        msg.ID,
			SenderID:  msg.SenderID,
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
			IsEcho:    false,
		},
	}})
	uc.Events.Publish(account.ID, realtime.Event{Type: EventConversationUpdate, Data: ConversationUpdateEvent{
		ConversationID: conv.ID,
		LastMessageAt:  conv.LastMessageAt,
		SenderName:     conv.SenderName,
		SenderPicture:  conv.SenderPicture,
	}})
}

// alreadySeen claims the provider message id before processing. The claim is
// best-effort: with no cache, an empty mid, or a cache error the event is
// processed, degrading to the provider's at-least-once delivery.
func (uc *IngestWebhookUseCase) alreadySeen(ctx context.Context, mid string) bool {
	if uc.Cache == nil || mid == "" {
		return false
	}
	fresh, err := uc.Cache.SetNX(ctx, "fb:mid:"+mid, "1", dedupTTL)
	if err != nil {
		uc.Log.Debug("dedup cache unavailable", zap.Error(err))
		return false
	}
	return !fresh
}
