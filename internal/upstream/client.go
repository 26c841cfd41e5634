// Package upstream fetches raw player data from the two stats backends: the
// gametools.network aggregator and the tracker ("BTR") service. Responses are
// decoded into generic maps and handed to the normalizer untouched except for
// the HTTP status attached under "code".
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "bftool_upstream_request_duration_seconds",
	Help:    "Upstream API request latency",
	Buckets: prometheus.DefBuckets,
}, []string{"upstream", "status"})

const (
	langCN = "zh-cn"
	langTW = "zh-tw"
)

type Client struct {
	http     *http.Client
	gtBase   string
	btrBase  string
	btrToken string
	platform string
	log      *zap.SugaredLogger
}

func New(gtBase, btrBase, btrToken, platform string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		gtBase:   gtBase,
		btrBase:  btrBase,
		btrToken: btrToken,
		platform: platform,
		log:      log,
	}
}

// langFor picks the localization the aggregator should answer in. bf1 only
// ships traditional Chinese.
func langFor(game string) string {
	if game == "bf1" {
		return langTW
	}
	return langCN
}

// FetchGT calls the aggregator at /{game}/{prop}. Non-2xx responses still
// decode and come back as a payload with their status under "code"; the
// normalizer turns those into user-facing errors.
func (c *Client) FetchGT(ctx context.Context, game, prop string, params url.Values) (map[string]any, error) {
	u := fmt.Sprintf("%s/%s/%s?%s", c.gtBase, game, prop, params.Encode())
	return c.fetch(ctx, "gametools", u, nil)
}

// GTPlayer fetches one player-scoped aggregator resource (stats, weapons,
// vehicles).
func (c *Client) GTPlayer(ctx context.Context, game, prop, name string) (map[string]any, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("lang", langFor(game))
	params.Set("platform", c.platform)
	return c.FetchGT(ctx, game, prop, params)
}

// GTServers fetches the server list matching a name prefix.
func (c *Client) GTServers(ctx context.Context, game, serverName string) (map[string]any, error) {
	params := url.Values{}
	params.Set("name", serverName)
	params.Set("lang", langFor(game))
	params.Set("platform", c.platform)
	params.Set("region", "all")
	params.Set("limit", "30")
	return c.FetchGT(ctx, game, "servers", params)
}

// FetchBTR calls the tracker at /api{prop} with the configured token.
func (c *Client) FetchBTR(ctx context.Context, prop, playerName, game string) (map[string]any, error) {
	params := url.Values{}
	params.Set("player_name", playerName)
	params.Set("game", game)
	u := fmt.Sprintf("%s/api%s?%s", c.btrBase, prop, params.Encode())
	headers := map[string]string{}
	if c.btrToken != "" {
		headers["X-Api-Token"] = c.btrToken
	}
	return c.fetch(ctx, "btr", u, headers)
}

// LookupEAID resolves an EA name to its account ID via the aggregator,
// used when validating a bind request.
func (c *Client) LookupEAID(ctx context.Context, name string) (string, error) {
	raw, err := c.GTPlayer(ctx, "bfv", "stats", name)
	if err != nil {
		return "", err
	}
	if code, _ := raw["code"].(float64); int(code) != http.StatusOK {
		return "", fmt.Errorf("ea name %q not found (status %d)", name, int(code))
	}
	switch id := raw["userId"].(type) {
	case string:
		return id, nil
	case float64:
		return strconv.FormatInt(int64(id), 10), nil
	default:
		return "", fmt.Errorf("ea name %q: response carries no userId", name)
	}
}

func (c *Client) fetch(ctx context.Context, upstream, u string, headers map[string]string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		requestDuration.WithLabelValues(upstream, "transport_error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%s request: %w", upstream, err)
	}
	defer resp.Body.Close()
	requestDuration.WithLabelValues(upstream, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s decode: %w", upstream, err)
	}
	// A literal null body decodes into a nil map.
	if payload == nil {
		payload = map[string]any{}
	}
	payload["code"] = float64(resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		c.log.Warnw("upstream returned non-success status",
			"upstream", upstream, "status", resp.StatusCode, "url", u)
	}
	return payload, nil
}
