package task

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	graphport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/port"
	qport "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/queue/port"
)

// SubscribePageTaskType is the queue task name for subscribing a freshly
// linked page to webhook events.
const SubscribePageTaskType = "facebook:subscribe_page"

// SubscribePagePayload is the JSON payload transported via the queue.
type SubscribePagePayload struct {
	PageID      string `json:"pageId"`
	AccessToken string `json:"accessToken"`
}

// RegisterSubscribePageTask binds the handler to the worker server. Returning
// an error lets the queue retry the Graph call with backoff; the outcome is
// never surfaced to the operator who linked the page.
func RegisterSubscribePageTask(srv qport.Server, gateway graphport.Gateway, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	srv.Register(SubscribePageTaskType, func(ctx context.Context, t qport.Task) error {
		var p SubscribePagePayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// Malformed payload will never succeed; drop without retry noise.
			log.Error("subscribe task payload invalid", zap.Error(err))
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := gateway.SubscribePage(ctx, p.PageID, p.AccessToken); err != nil {
			log.Warn("page webhook subscription failed, will retry",
				zap.String("page_id", p.PageID), zap.Error(err))
			return err
		}
		log.Info("page subscribed to webhook events", zap.String("page_id", p.PageID))
		return nil
	})
}
