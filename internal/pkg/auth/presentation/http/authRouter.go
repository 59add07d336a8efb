package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/application/usecase"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/controller"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/middleware"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
)

// RegisterRoutes mounts the auth endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, accounts repository.AccountRepository, tokens *token.Service, timeout time.Duration) {
	registerCtl := controller.NewRegisterController(usecase.NewRegisterUseCase(accounts), timeout)
	loginCtl := controller.NewLoginController(usecase.NewLoginUseCase(accounts, tokens), timeout)

	limited := g.Group("/auth", middleware.RateLimit(5, 10))

	// POST /api/v1/auth/register -> create an operator account
	limited.POST("/register", registerCtl.Handle())

	// POST /api/v1/auth/login -> exchange credentials for a JWT
	limited.POST("/login", loginCtl.Handle())
}
