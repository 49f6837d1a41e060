package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/bad", func(c *gin.Context) { c.String(http.StatusUnprocessableEntity, "bad") })
	return router
}

func TestErrorLogMiddleware_SetsRequestID(t *testing.T) {
	router := newTestEngine(ErrorLogMiddleware)
	for _, path := range []string{"/ok", "/bad"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		require.NoError(t, err, path)
	}
}

func TestErrorLogMiddleware_KeepsBody(t *testing.T) {
	router := newTestEngine(ErrorLogMiddleware)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "bad", w.Body.String())
}

func TestCacheRouter(t *testing.T) {
	tests := []struct {
		name      string
		cacheTime int
		want      string
	}{
		{"no cache", CacheNoCache, "no-cache"},
		{"max age", 3600, "private, max-age=3600"},
		{"custom", CacheCustom, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestEngine((&CacheRouter{CacheTime: tt.cacheTime}).Handler())
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
			assert.Equal(t, tt.want, w.Header().Get("cache-control"))
		})
	}
}
