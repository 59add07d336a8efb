package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/application/usecase"
)

// RegisterController handles operator sign-up (one controller per endpoint).
type RegisterController struct {
	UC      *usecase.RegisterUseCase
	Timeout time.Duration
}

func NewRegisterController(uc *usecase.RegisterUseCase, timeout time.Duration) *RegisterController {
	return &RegisterController{UC: uc, Timeout: timeout}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
		defer cancel()

		account, err := h.UC.Execute(ctx, usecase.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unexpected persistence error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
		})
	}
}
