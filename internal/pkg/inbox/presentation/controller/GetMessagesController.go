package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/middleware"
	inbox "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/domain"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/usecase"
)

type messageResponse struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsEcho    bool      `json:"isEcho"`
}

func toMessageResponse(m inbox.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
		IsEcho:    m.IsEcho,
	}
}

// GetMessagesController handles the message history endpoint.
type GetMessagesController struct {
	UC      *usecase.GetMessagesUseCase
	Timeout time.Duration
}

func NewGetMessagesController(uc *usecase.GetMessagesUseCase, timeout time.Duration) *GetMessagesController {
	return &GetMessagesController{UC: uc, Timeout: timeout}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conversationID := c.Param("conversationId")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetMessagesInput{
			ConversationID: conversationID,
			AccountID:      middleware.AccountID(c),
		})
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrConversationNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unexpected persistence error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		out := make([]messageResponse, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, toMessageResponse(m))
		}
		c.JSON(http.StatusOK, gin.H{
			"conversationId": conversationID,
			"messages":       out,
		})
	}
}
