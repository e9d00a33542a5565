package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradeport.backend/pkg/jwt"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	r := gin.New()
	r.GET("/me", AuthMiddleware(svc), func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role})
	})
	return r, svc
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is required")
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authorization format")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expired := jwt.NewJWTService("test-secret", -time.Minute, time.Hour)
	pair, err := expired.GenerateTokenPair(uuid.New(), "u@example.com", "BUYER")
	require.NoError(t, err)

	r, _ := newAuthRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, svc := newAuthRouter(t)
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "u@example.com", "SELLER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "SELLER")
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := func(role string) http.Handler {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(UserRoleKey, role)
			}
			c.Next()
		})
		r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin allowed", "ADMIN", http.StatusOK},
		{"seller forbidden", "SELLER", http.StatusForbidden},
		{"buyer forbidden", "BUYER", http.StatusForbidden},
		{"no role unauthorized", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(tt.role).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
