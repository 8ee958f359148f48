package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautyhub/config"
	"beautyhub/infras/metrics"
	"beautyhub/infras/otel/mocks"
	cacheMocks "beautyhub/shared/cache/mocks"
	"beautyhub/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		count      int64
		err        error
		wantStatus int
		remaining  string
	}{
		{name: "under the limit", count: 1, wantStatus: http.StatusNoContent, remaining: "1"},
		{name: "at the limit", count: 2, wantStatus: http.StatusNoContent, remaining: "0"},
		{name: "over the limit", count: 3, wantStatus: http.StatusTooManyRequests, remaining: "0"},
		{name: "redis down fails open", err: errors.New("dial tcp: refused"), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 2
			cfg.App.RateLimiter.WindowSeconds = 60

			redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			redis.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.7:curl", 60).Return(tt.count, tt.err)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redis, metrics.New(cfg))
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/shops", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			req.Header.Set("User-Agent", "curl")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := &config.Config{}
	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redis, metrics.New(cfg))
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
