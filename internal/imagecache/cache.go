// Package imagecache memoizes remote artwork as base64 data URLs in Redis so
// report cards do not refetch the same banners, logos and item images on
// every query. Caching is last-write-wins; concurrent fills of the same key
// simply overwrite each other.
package imagecache

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an image cannot be fetched and no fallback
// is available.
var ErrNotFound = errors.New("image not available")

const keyPrefix = "bftool:img:"

// RedisClient is the subset of the redis client the cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type Cache struct {
	rdb   RedisClient
	http  *http.Client
	ttl   time.Duration
	retry int
	log   *zap.SugaredLogger
}

func New(rdb RedisClient, ttl time.Duration, retry int, log *zap.SugaredLogger) *Cache {
	if retry < 1 {
		retry = 1
	}
	return &Cache{
		rdb:   rdb,
		http:  &http.Client{Timeout: 15 * time.Second},
		ttl:   ttl,
		retry: retry,
		log:   log,
	}
}

// GetOrFetch returns the cached data URL for key, fetching and encoding the
// image when absent. A fetch failure leaves the cache untouched.
func (c *Cache) GetOrFetch(ctx context.Context, key, url string) (string, error) {
	cached, err := c.rdb.Get(ctx, keyPrefix+key).Result()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.log.Warnw("image cache read failed", "key", key, "error", err)
	}

	data, err := c.fetchEncoded(ctx, url)
	if err != nil {
		return "", err
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.log.Warnw("image cache write failed", "key", key, "error", err)
	}
	return data, nil
}

// GetWithFallback behaves like GetOrFetch but answers with another cached
// key when the primary image cannot be fetched.
func (c *Cache) GetWithFallback(ctx context.Context, key, url, fallbackKey string) (string, error) {
	data, err := c.GetOrFetch(ctx, key, url)
	if err == nil {
		return data, nil
	}
	fallback, ferr := c.rdb.Get(ctx, keyPrefix+fallbackKey).Result()
	if ferr == nil {
		return fallback, nil
	}
	c.log.Errorw("primary and fallback images unavailable", "key", key, "fallback", fallbackKey)
	return "", ErrNotFound
}

// Preload fetches a static name -> URL set into the cache, continuing past
// individual failures.
func (c *Cache) Preload(ctx context.Context, images map[string]string) {
	for name, url := range images {
		if _, err := c.GetOrFetch(ctx, name, url); err != nil {
			c.log.Warnw("preload failed", "name", name, "error", err)
		}
	}
	c.log.Infow("image preload finished", "count", len(images))
}

// fetchEncoded downloads an image with browser-like headers and bounded
// exponential backoff, returning it as a data URL.
func (c *Cache) fetchEncoded(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retry; attempt++ {
		data, err := c.fetchOnce(ctx, url)
		if err == nil {
			return data, nil
		}
		if errors.Is(err, ErrNotFound) {
			return "", err
		}
		lastErr = err
		c.log.Warnw("image fetch attempt failed", "url", url, "attempt", attempt, "error", err)
		if attempt < c.retry {
			backoff := time.Duration(1<<attempt) * time.Second
			if backoff > 5*time.Second {
				backoff = 5 * time.Second
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return "", fmt.Errorf("image fetch failed after %d attempts: %w", c.retry, lastErr)
}

func (c *Cache) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Set("Referer", "https://www.battlefield.com/")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" || !strings.HasPrefix(mime, "image/") {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(body)), nil
}
