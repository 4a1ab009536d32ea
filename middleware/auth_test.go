package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"notekeep/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(tokens *services.TokenService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":    c.GetString(ContextUserID),
			"sessionId": c.GetString(ContextSessionID),
		})
	})
	return router
}

func doAuthRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("test-secret", "notekeep", 15*time.Minute, 24*time.Hour)
	router := newAuthTestRouter(tokens)

	t.Run("missing header", func(t *testing.T) {
		if w := doAuthRequest(router, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		if w := doAuthRequest(router, "Basic abc123"); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if w := doAuthRequest(router, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("refresh token rejected on protected routes", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken("user-1", "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w := doAuthRequest(router, "Bearer "+refresh); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("valid access token resolves the identity", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken("user-1", "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		w := doAuthRequest(router, "Bearer "+access)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		for _, want := range []string{"user-1", "session-1"} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %q: %s", want, body)
			}
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		stale := services.NewTokenService("test-secret", "notekeep", -time.Minute, -time.Minute)
		expired, err := stale.GenerateAccessToken("user-1", "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w := doAuthRequest(router, "Bearer "+expired); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})
}
