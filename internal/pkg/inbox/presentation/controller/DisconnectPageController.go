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

// DisconnectPageController removes the account's page link.
type DisconnectPageController struct {
	UC      *usecase.DisconnectPageUseCase
	Timeout time.Duration
}

func NewDisconnectPageController(uc *usecase.DisconnectPageUseCase, timeout time.Duration) *DisconnectPageController {
	return &DisconnectPageController{UC: uc, Timeout: timeout}
}

func (h *DisconnectPageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		if err := h.UC.Execute(ctx, middleware.AccountID(c)); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"connected": false})
	}
}
