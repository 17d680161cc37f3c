package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theatre-reservation/internal/config"
)

func cacheCfg() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          30 * time.Second,
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

// paramContext builds a context the way echo's router would for a
// parameterized route: the matched template in Path() and the concrete
// URL on the request.
func paramContext(e *echo.Echo, url, template string, paramValue string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(template)
	c.SetParamNames("id")
	c.SetParamValues(paramValue)
	return c
}

func TestCacheKey_DistinctAcrossParamValues(t *testing.T) {
	e := echo.New()
	cfg := cacheCfg()

	// Two different shows behind the same route template must never
	// share a cache entry.
	k1 := cacheKey(cfg, paramContext(e, "/v1/shows/1/seats", "/v1/shows/:id/seats", "1"))
	k2 := cacheKey(cfg, paramContext(e, "/v1/shows/2/seats", "/v1/shows/:id/seats", "2"))
	assert.NotEqual(t, k1, k2)

	// Same resource, same key.
	again := cacheKey(cfg, paramContext(e, "/v1/shows/1/seats", "/v1/shows/:id/seats", "1"))
	assert.Equal(t, k1, again)
}

func TestCacheKey_QueryContributes(t *testing.T) {
	e := echo.New()
	cfg := cacheCfg()

	k1 := cacheKey(cfg, paramContext(e, "/v1/shows/1/seats?x=1", "/v1/shows/:id/seats", "1"))
	k2 := cacheKey(cfg, paramContext(e, "/v1/shows/1/seats?x=2", "/v1/shows/:id/seats", "1"))
	assert.NotEqual(t, k1, k2)
}

func TestNewRedisCache_NilClientPassesThrough(t *testing.T) {
	e := echo.New()
	mw := NewRedisCache(cacheCfg(), nil)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/shows", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Pass-through mode must not pretend to cache.
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestNewRedisCache_DisabledPassesThrough(t *testing.T) {
	e := echo.New()
	cfg := cacheCfg()
	cfg.Enabled = false
	mw := NewRedisCache(cfg, nil)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/shows", nil), httptest.NewRecorder())
	require.NoError(t, h(c))
	assert.True(t, called)
}
