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

// GetPageController reports the account's current page link, if any. The
// access token never leaves the server.
type GetPageController struct {
	UC      *usecase.GetPageLinkUseCase
	Timeout time.Duration
}

func NewGetPageController(uc *usecase.GetPageLinkUseCase, timeout time.Duration) *GetPageController {
	return &GetPageController{UC: uc, Timeout: timeout}
}

func (h *GetPageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		link, err := h.UC.Execute(ctx, middleware.AccountID(c))
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		if link == nil {
			c.JSON(http.StatusOK, gin.H{"connected": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"connected":   true,
			"pageId":      link.PageID,
			"pageName":    link.PageName,
			"pictureUrl":  link.PictureURL,
			"connectedAt": link.ConnectedAt,
		})
	}
}
