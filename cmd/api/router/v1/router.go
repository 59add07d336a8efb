package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	authrepo "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
	authHandler "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/http"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
	inboxHandler "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1. The webhook
// endpoint lives at the engine root since Facebook calls it unauthenticated.
func RegisterRoutes(r *gin.Engine, accounts authrepo.AccountRepository, tokens *token.Service, timeout time.Duration, inbox inboxHandler.Deps) {
	inboxHandler.RegisterWebhookRoutes(r, inbox)

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1, accounts, tokens, timeout)
	inboxHandler.RegisterRoutes(v1, inbox)
}
