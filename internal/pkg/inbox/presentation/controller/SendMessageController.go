package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/middleware"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/usecase"
)

// SendMessageController handles operator replies (one controller per
// endpoint). Delivery is synchronous so the UI learns immediately whether the
// reply reached the recipient.
type SendMessageController struct {
	UC      *usecase.SendReplyUseCase
	Timeout time.Duration
}

func NewSendMessageController(uc *usecase.SendReplyUseCase, timeout time.Duration) *SendMessageController {
	return &SendMessageController{UC: uc, Timeout: timeout}
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
	Text           string `json:"text" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendReplyInput{
			AccountID:      middleware.AccountID(c),
			ConversationID: req.ConversationID,
			Text:           req.Text,
		})
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrConversationNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPageNotLinked):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrDeliveryFailed):
				c.JSON(http.StatusBadGateway, gin.H{"error": "message delivery failed"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unexpected persistence error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"conversationId": msg.ConversationID,
			"message":        toMessageResponse(*msg),
		})
	}
}
