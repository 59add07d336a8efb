package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
)

func newGuardedRouter(t *testing.T, tokens *token.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountId": AccountID(c)})
	})
	return r
}

func TestRequireAuth_ValidBearer(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	tok, err := tokens.Issue("acc-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := newGuardedRouter(t, tokens)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuth_TokenQueryParam(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	tok, err := tokens.Issue("acc-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := newGuardedRouter(t, tokens)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+tok, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuth_Rejects(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	r := newGuardedRouter(t, tokens)

	for name, header := range map[string]string{
		"missing": "",
		"garbage": "Bearer not.a.jwt",
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, w.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/login", RateLimit(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %v", codes)
	}
}
