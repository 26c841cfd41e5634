// Package handlers exposes the HTTP API. Handlers stay thin: decode, call
// the report service, encode.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BayHyn/battlefield-tool/internal/logic"
	"github.com/BayHyn/battlefield-tool/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ReportService defines the report operations the handlers call.
type ReportService interface {
	Report(ctx context.Context, req logic.ReportRequest) (*models.ReportBundle, error)
	ReportHTML(ctx context.Context, req logic.ReportRequest) (string, error)
	ReportText(ctx context.Context, req logic.ReportRequest) (string, error)
	Servers(ctx context.Context, game, serverName string) (*models.ReportBundle, error)
	ServersHTML(ctx context.Context, game, serverName string) (string, error)
	BindUser(ctx context.Context, chatID, eaName string) (*models.UserBind, error)
	BindChannel(ctx context.Context, channelID, game string) (*models.ChannelDefault, error)
}

// HistoryQueue exposes the recorder's queue depth for the ready check.
type HistoryQueue interface {
	QueueDepth() int
}

type Config struct {
	Service    ReportService
	History    HistoryQueue
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
}

type Handler struct {
	svc       ReportService
	history   HistoryQueue
	pg        *pgxpool.Pool
	ch        driver.Conn
	redis     *redis.Client
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		svc:       cfg.Service,
		history:   cfg.History,
		pg:        cfg.Postgres,
		ch:        cfg.ClickHouse,
		redis:     cfg.Redis,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}

// Routes registers the API endpoints on a router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/report/{game}/{dataType}", h.GetReport)
	r.Get("/report/{game}/{dataType}/text", h.GetReportText)
	r.Get("/servers/{game}", h.GetServers)
	r.Post("/bindings/user", h.BindUser)
	r.Post("/bindings/channel", h.BindChannel)
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"postgres":   h.pg != nil && h.pg.Ping(ctx) == nil,
		"clickhouse": h.ch != nil && h.ch.Ping(ctx) == nil,
		"redis":      h.redis != nil && h.redis.Ping(ctx).Err() == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": h.history.QueueDepth(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

func (h *Handler) htmlResponse(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
