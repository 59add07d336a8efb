package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/usecase"
)

// WebhookController handles the Facebook webhook endpoint: the GET
// verification handshake and the POST event receiver.
type WebhookController struct {
	UC          *usecase.IngestWebhookUseCase
	VerifyToken string
	Log         *zap.Logger
}

func NewWebhookController(uc *usecase.IngestWebhookUseCase, verifyToken string, log *zap.Logger) *WebhookController {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookController{UC: uc, VerifyToken: verifyToken, Log: log}
}

// HandleVerify answers the subscription handshake. Facebook sends the
// configured verify token and expects the challenge echoed back verbatim.
func (h *WebhookController) HandleVerify() gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == h.VerifyToken {
			c.String(http.StatusOK, challenge)
			return
		}
		c.Status(http.StatusForbidden)
	}
}

// HandleReceive ingests an event batch. Page batches are always acknowledged
// with 200 so the provider does not redeliver; processing failures inside the
// batch are contained by the use case.
func (h *WebhookController) HandleReceive() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload inbox.WebhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		if err := h.UC.Execute(c.Request.Context(), payload); err != nil {
			if errors.Is(err, usecase.ErrUnsupportedPayload) {
				c.Status(http.StatusNotFound)
				return
			}
			h.Log.Error("webhook ingestion failed", zap.Error(err))
			c.Status(http.StatusNotFound)
			return
		}
		c.String(http.StatusOK, "EVENT_RECEIVED")
	}
}
