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

// conversationResponse is the list entry shape consumed by the inbox UI.
type conversationResponse struct {
	ID            string    `json:"id"`
	PageID        string    `json:"pageId"`
	SenderID      string    `json:"senderId"`
	SenderName    string    `json:"senderName"`
	SenderPicture string    `json:"senderPicture"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toConversationResponse(c inbox.Conversation) conversationResponse {
	return conversationResponse{
		ID:            c.ID,
		PageID:        c.PageID,
		SenderID:      c.SenderID,
		SenderName:    c.SenderName,
		SenderPicture: c.SenderPicture,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
	}
}

// ListConversationsController handles the conversation list endpoint.
type ListConversationsController struct {
	UC      *usecase.ListConversationsUseCase
	Timeout time.Duration
}

func NewListConversationsController(uc *usecase.ListConversationsUseCase, timeout time.Duration) *ListConversationsController {
	return &ListConversationsController{UC: uc, Timeout: timeout}
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		convs, err := h.UC.Execute(ctx, middleware.AccountID(c))
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		out := make([]conversationResponse, 0, len(convs))
		for _, conv := range convs {
			out = append(out, toConversationResponse(conv))
		}
		c.JSON(http.StatusOK, gin.H{"conversations": out})
	}
}
