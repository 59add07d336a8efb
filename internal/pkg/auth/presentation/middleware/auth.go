package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
)

// AccountIDKey is the gin context key holding the authenticated account id.
const AccountIDKey = "accountID"

// RequireAuth validates the Bearer token and stores the account id on the
// context. Tokens may also arrive via the "token" query parameter so that
// browser websocket clients, which cannot set headers, can authenticate.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		accountID, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(AccountIDKey, accountID)
		c.Next()
	}
}

// AccountID reads the authenticated account id set by RequireAuth.
func AccountID(c *gin.Context) string {
	return c.GetString(AccountIDKey)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}
