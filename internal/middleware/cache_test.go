package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mountainmixology/cocktail-catering/internal/config"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

// newCachedCatalogue registers a parameterized route behind the cache,
// echoing the id so responses differ per path. hits counts how often
// the origin handler actually ran.
func newCachedCatalogue(rdb *redis.Client, hits *int) *echo.Echo {
	e := echo.New()
	g := e.Group("/api/cocktails", NewRedisCache(cacheTestConfig(), rdb))
	g.GET("/:id", func(c echo.Context) error {
		if hits != nil {
			*hits++
		}
		return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id")})
	})
	return e
}

func getPath(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRedisCache_SeparateEntriesPerID(t *testing.T) {
	rdb := newTestRedis(t)
	hits := 0
	e := newCachedCatalogue(rdb, &hits)

	first := getPath(e, "/api/cocktails/1")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Contains(t, first.Body.String(), `"id":"1"`)

	// A different id must reach the origin, not replay id 1's entry.
	second := getPath(e, "/api/cocktails/2")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "MISS", second.Header().Get("X-Cache"))
	assert.Contains(t, second.Body.String(), `"id":"2"`)
	assert.Equal(t, 2, hits)

	// And each id still gets its own hit afterwards.
	again := getPath(e, "/api/cocktails/1")
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "HIT", again.Header().Get("X-Cache"))
	assert.Contains(t, again.Body.String(), `"id":"1"`)
	assert.Equal(t, 2, hits)
}

func TestRedisCache_HitReplaysOriginResponse(t *testing.T) {
	rdb := newTestRedis(t)
	hits := 0
	e := newCachedCatalogue(rdb, &hits)

	miss := getPath(e, "/api/cocktails/7")
	require.Equal(t, http.StatusOK, miss.Code)
	require.Equal(t, "MISS", miss.Header().Get("X-Cache"))

	hit := getPath(e, "/api/cocktails/7")
	require.Equal(t, http.StatusOK, hit.Code)
	assert.Equal(t, "HIT", hit.Header().Get("X-Cache"))
	assert.Equal(t, miss.Body.Bytes(), hit.Body.Bytes())
	assert.Equal(t, miss.Header().Get(echo.HeaderContentType), hit.Header().Get(echo.HeaderContentType))
	assert.Equal(t, 1, hits)
}

func TestRedisCache_PassThroughWithoutRedis(t *testing.T) {
	hits := 0
	e := newCachedCatalogue(nil, &hits)

	for i := 0; i < 2; i++ {
		rec := getPath(e, "/api/cocktails/3")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, hits)
}
