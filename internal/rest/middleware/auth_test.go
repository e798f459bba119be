package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagetalk/comment-api/internal/auth"
	"github.com/pagetalk/comment-api/internal/rest/middleware"
)

const testSecret = "test-secret"

func authedRouter() (*gin.Engine, *int64) {
	gin.SetMode(gin.TestMode)
	var seenUserID int64
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		seenUserID = c.GetInt64("user_id")
		c.Status(http.StatusOK)
	})
	return r, &seenUserID
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token passes through with the user id", func(t *testing.T) {
		token, err := auth.GenerateToken([]byte(testSecret), 42, time.Hour)
		require.NoError(t, err)

		r, seenUserID := authedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), *seenUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		r, _ := authedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		r, _ := authedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := auth.GenerateToken([]byte("other-secret"), 42, time.Hour)
		require.NoError(t, err)

		r, _ := authedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := auth.GenerateToken([]byte(testSecret), 42, -time.Minute)
		require.NoError(t, err)

		r, _ := authedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
