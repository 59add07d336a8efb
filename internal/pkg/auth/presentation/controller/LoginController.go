package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/application/usecase"
)

// LoginController exchanges credentials for a session token.
type LoginController struct {
	UC      *usecase.LoginUseCase
	Timeout time.Duration
}

func NewLoginController(uc *usecase.LoginUseCase, timeout time.Duration) *LoginController {
	return &LoginController{UC: uc, Timeout: timeout}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.LoginInput{Email: req.Email, Password: req.Password})
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unexpected persistence error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": out.Token,
			"account": gin.H{
				"id":    out.Account.ID,
				"name":  out.Account.Name,
				"email": out.Account.Email,
			},
		})
	}
}
