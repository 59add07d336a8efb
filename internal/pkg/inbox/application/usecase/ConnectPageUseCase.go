package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	qport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/queue/port"
	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
	authrepo "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/task"
)

// ConnectPageInput is the page identity handed over by the OAuth dialog.
type ConnectPageInput struct {
	AccountID   string
	PageID      string
	PageName    string
	AccessToken string
	PictureURL  string
}

// ConnectPageUseCase links a page to the account (last writer wins on
// re-link) and schedules the webhook subscription in the background. The
// subscription is fire-and-forget: enqueue failures are logged, never
// surfaced, and the queue retries the Graph call itself.
type ConnectPageUseCase struct {
	Accounts authrepo.AccountRepository
	Queue    qport.Client
	Log      *zap.Logger
}

func NewConnectPageUseCase(accounts authrepo.AccountRepository, queue qport.Client, log *zap.Logger) *ConnectPageUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConnectPageUseCase{Accounts: accounts, Queue: queue, Log: log}
}

func (uc *ConnectPageUseCase) Execute(ctx context.Context, in ConnectPageInput) (*auth.PageLink, error) {
	if in.AccountID == "" || in.PageID == "" || in.AccessToken == "" {
		return nil, fmt.Errorf("accountId, page id and accessToken are required")
	}

	link := auth.PageLink{
		AccountID:   in.AccountID,
		PageID:      in.PageID,
		PageName:    in.PageName,
		AccessToken: in.AccessToken,
		PictureURL:  in.PictureURL,
		ConnectedAt: time.Now().UTC(),
	}
	if err := uc.Accounts.UpsertPageLink(ctx, link); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.enqueueSubscription(ctx, link)
	return &link, nil
}

func (uc *ConnectPageUseCase) enqueueSubscription(ctx context.Context, link auth.PageLink) {
	if uc.Queue == nil {
		return
	}
	payload, err := json.Marshal(task.SubscribePagePayload{
		PageID:      link.PageID,
		AccessToken: link.AccessToken,
	})
	if err != nil {
		uc.Log.Error("subscription payload encode failed", zap.Error(err))
		return
	}
	_, err = uc.Queue.Enqueue(ctx,
		qport.Task{Type: task.SubscribePageTaskType, Payload: payload},
		qport.EnqueueOption{Queue: "facebook", MaxRetry: 10, UniqueTTL: time.Minute},
	)
	if err != nil {
		uc.Log.Error("webhook subscription enqueue failed",
			zap.String("page_id", link.PageID), zap.Error(err))
	}
}
