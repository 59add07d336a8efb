package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	cacheport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/cache/port"
	graphport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/port"
	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/port"
)

const profileCacheTTL = time.Hour

// ResolveThreadInput identifies the inbound event being routed. Account must
// carry its PageLink so the correspondent's profile can be fetched.
type ResolveThreadInput struct {
	Account   *auth.Account
	SenderID  string
	Timestamp time.Time
}

// ResolveThreadUseCase decides whether an inbound event attaches to the
// latest conversation or opens a new one, applying the 24-hour inactivity
// window. Resolution is serialized per (account, page, sender) key so
// concurrent deliveries cannot open two conversations for the same burst.
type ResolveThreadUseCase struct {
	Conversations repository.ConversationRepository
	Graph         graphport.Gateway
	Cache         cacheport.Cache // optional profile cache
	Log           *zap.Logger

	locks keyMutex
}

func NewResolveThreadUseCase(conversations repository.ConversationRepository, gateway graphport.Gateway, cache cacheport.Cache, log *zap.Logger) *ResolveThreadUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResolveThreadUseCase{Conversations: conversations, Graph: gateway, Cache: cache, Log: log}
}

// Execute returns the conversation the event belongs to, creating one when
// none is open. Profile metadata fetch is best-effort: on failure the
// conversation is created with a placeholder name and empty picture.
func (uc *ResolveThreadUseCase) Execute(ctx context.Context, in ResolveThreadInput) (*inbox.Conversation, error) {
	if in.Account == nil || in.Account.Page == nil {
		return nil, fmt.Errorf("account with page link is required")
	}
	pageID := in.Account.Page.PageID

	unlock := uc.locks.lock(in.Account.ID + "/" + pageID + "/" + in.SenderID)
	defer unlock()

	existing, err := uc.Conversations.FindLatest(ctx, in.Account.ID, pageID, in.SenderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil && existing.OpenAt(in.Timestamp) {
		return existing, nil
	}

	profile := uc.lookupProfile(ctx, in.SenderID, in.Account.Page.AccessToken)

	conv, err := inbox.NewConversation(inbox.Conversation{
		AccountID:     in.Account.ID,
		PageID:        pageID,
		SenderID:      in.SenderID,
		SenderName:    profile.Name,
		SenderPicture: profile.PictureURL,
		LastMessageAt: in.Timestamp,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Conversations.Create(ctx, *conv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	conv.ID = id
	return conv, nil
}

// lookupProfile resolves the correspondent's display identity through the
// cache first, then the Graph API. Never fails: the zero profile falls back
// to the placeholder name in NewConversation.
func (uc *ResolveThreadUseCase) lookupProfile(ctx context.Context, senderID, accessToken string) graphport.Profile {
	cacheKey := "fb:profile:" + senderID

	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, cacheKey); err == nil {
			var p graphport.Profile
			if json.Unmarshal([]byte(raw), &p) == nil {
				return p
			}
		}
	}

	p, err := uc.Graph.FetchProfile(ctx, senderID, accessToken)
	if err != nil {
		uc.Log.Warn("profile fetch failed, using placeholder",
			zap.String("sender_id", senderID), zap.Error(err))
		return graphport.Profile{}
	}

	if uc.Cache != nil {
		if raw, err := json.Marshal(p); err == nil {
			if err := uc.Cache.Set(ctx, cacheKey, string(raw), profileCacheTTL); err != nil {
				uc.Log.Debug("profile cache write failed", zap.Error(err))
			}
		}
	}
	return p
}
