package logic

import (
	"context"

	"github.com/BayHyn/battlefield-tool/internal/models"
)

// Fetcher defines the upstream calls the report service makes.
type Fetcher interface {
	GTPlayer(ctx context.Context, game, prop, name string) (map[string]any, error)
	GTServers(ctx context.Context, game, serverName string) (map[string]any, error)
	FetchBTR(ctx context.Context, prop, playerName, game string) (map[string]any, error)
	LookupEAID(ctx context.Context, name string) (string, error)
}

// BindStore defines the persistence calls for user and channel bindings.
type BindStore interface {
	UpsertUserBind(ctx context.Context, chatID, eaName, eaID string) error
	QueryUserBind(ctx context.Context, chatID string) (*models.UserBind, error)
	UpsertChannelDefault(ctx context.Context, channelID, game string) error
	QueryChannelDefault(ctx context.Context, channelID string) (*models.ChannelDefault, error)
}

// Renderer turns a bundle into report HTML.
type Renderer interface {
	Main(ctx context.Context, bundle *models.ReportBundle) (string, error)
	Weapons(ctx context.Context, bundle *models.ReportBundle) (string, error)
	Vehicles(ctx context.Context, bundle *models.ReportBundle) (string, error)
	Soldiers(ctx context.Context, bundle *models.ReportBundle) (string, error)
	Servers(ctx context.Context, bundle *models.ReportBundle) (string, error)
}

// HistorySink records query events. The recorder drops rather than blocks.
type HistorySink interface {
	Record(event models.QueryEvent) bool
}
