package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// memoryRedis implements RedisClient over a plain map.
type memoryRedis struct {
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := m.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func TestGetOrFetchEncodesAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("pngbytes"))
	}))
	defer srv.Close()

	rdb := newMemoryRedis()
	cache := New(rdb, time.Hour, 1, zap.NewNop().Sugar())

	data, err := cache.GetOrFetch(context.Background(), "banner", srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(data, "data:image/png;base64,") {
		t.Errorf("unexpected data URL: %q", data)
	}

	// Second lookup must come from the cache.
	if _, err := cache.GetOrFetch(context.Background(), "banner", srv.URL); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Errorf("expected 1 upstream hit, got %d", hits)
	}
}

func TestGetOrFetchNotFoundDoesNotRetry(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cache := New(newMemoryRedis(), time.Hour, 3, zap.NewNop().Sugar())
	if _, err := cache.GetOrFetch(context.Background(), "missing", srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
	if hits != 1 {
		t.Errorf("404 should short-circuit retries, got %d hits", hits)
	}
}

func TestGetWithFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	rdb := newMemoryRedis()
	rdb.data[keyPrefix+"default_avatar"] = "data:image/png;base64,ZmFsbGJhY2s="
	cache := New(rdb, time.Hour, 1, zap.NewNop().Sugar())

	data, err := cache.GetWithFallback(context.Background(), "avatar:p1", srv.URL, "default_avatar")
	if err != nil {
		t.Fatal(err)
	}
	if data != "data:image/png;base64,ZmFsbGJhY2s=" {
		t.Errorf("expected fallback image, got %q", data)
	}
}

func TestPreload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpg"))
	}))
	defer srv.Close()

	rdb := newMemoryRedis()
	cache := New(rdb, time.Hour, 1, zap.NewNop().Sugar())
	cache.Preload(context.Background(), map[string]string{
		"bf4_banner": srv.URL + "/banner",
		"bf4_logo":   srv.URL + "/logo",
	})
	if len(rdb.data) != 2 {
		t.Errorf("expected 2 preloaded entries, got %d", len(rdb.data))
	}
}
