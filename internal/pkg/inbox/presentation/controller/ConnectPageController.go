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

// ConnectPageController links a Facebook page to the operator's account.
type ConnectPageController struct {
	UC      *usecase.ConnectPageUseCase
	Timeout time.Duration
}

func NewConnectPageController(uc *usecase.ConnectPageUseCase, timeout time.Duration) *ConnectPageController {
	return &ConnectPageController{UC: uc, Timeout: timeout}
}

type connectPageRequest struct {
	PageID      string `json:"pageId" binding:"required"`
	PageName    string `json:"pageName"`
	AccessToken string `json:"accessToken" binding:"required"`
	PictureURL  string `json:"pictureUrl"`
}

func (h *ConnectPageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req connectPageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		link, err := h.UC.Execute(ctx, usecase.ConnectPageInput{
			AccountID:   middleware.AccountID(c),
			PageID:      req.PageID,
			PageName:    req.PageName,
			AccessToken: req.AccessToken,
			PictureURL:  req.PictureURL,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"pageId":      link.PageID,
			"pageName":    link.PageName,
			"pictureUrl":  link.PictureURL,
			"connectedAt": link.ConnectedAt,
		})
	}
}
