package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/bookfeed/db"
)

func newLimitedRouter(store RateLimitStore, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(store, limit, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, path string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	store := db.NewRedisStore(db.RedisOptions{Addr: mr.Addr()})
	t.Cleanup(store.Close)
	r := newLimitedRouter(store, 2)

	assert.Equal(t, http.StatusOK, get(r, "/ping"))
	assert.Equal(t, http.StatusOK, get(r, "/ping"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/ping"))
}

func TestRateLimiter_FailsOpenWhenStoreDown(t *testing.T) {
	store := db.NewRedisStore(db.RedisOptions{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	t.Cleanup(store.Close)
	r := newLimitedRouter(store, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/ping"))
	}
}
