package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/pagetalk/comment-api/internal/rest/middleware"
)

func limiterRouter(window time.Duration, max int64) (*gin.Engine, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()

	route := gin.New()
	route.Use(middleware.RateLimit(db, window, max))
	route.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return route, mock
}

func doRequest(route *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	route, mock := limiterRouter(time.Minute, 5)

	mock.ExpectIncr("ratelimit:192.0.2.1").SetVal(1)
	mock.ExpectExpire("ratelimit:192.0.2.1", time.Minute).SetVal(true)

	rec := doRequest(route)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	route, mock := limiterRouter(time.Minute, 5)

	mock.ExpectIncr("ratelimit:192.0.2.1").SetVal(6)
	mock.ExpectTTL("ratelimit:192.0.2.1").SetVal(30 * time.Second)

	rec := doRequest(route)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitReArmsWindowWithoutExpiry(t *testing.T) {
	route, mock := limiterRouter(time.Minute, 5)

	// A counter left without a TTL must get a fresh window instead of
	// throttling the client forever.
	mock.ExpectIncr("ratelimit:192.0.2.1").SetVal(2)
	mock.ExpectTTL("ratelimit:192.0.2.1").SetVal(time.Duration(-1))
	mock.ExpectExpire("ratelimit:192.0.2.1", time.Minute).SetVal(true)

	rec := doRequest(route)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitFailsOpenWhenRedisDown(t *testing.T) {
	route, mock := limiterRouter(time.Minute, 5)

	mock.ExpectIncr("ratelimit:192.0.2.1").SetErr(assert.AnError)

	rec := doRequest(route)

	assert.Equal(t, http.StatusOK, rec.Code)
}
