// Package logic orchestrates one report query end to end: resolve the game
// and player, fetch the raw payloads, normalize, then render or project to
// text. Every query also emits a history event.
package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BayHyn/battlefield-tool/internal/bindings"
	"github.com/BayHyn/battlefield-tool/internal/models"
	"github.com/BayHyn/battlefield-tool/internal/normalize"
)

// ErrNoBinding is returned when neither the request nor the store carries an
// EA name for the chat user. The text is sent to the user as-is.
var ErrNoBinding = errors.New("未绑定账号，请先使用bind [ea_name]绑定EA账号")

// UnknownGameError rejects a game code outside the supported set.
type UnknownGameError struct {
	Game string
}

func (e *UnknownGameError) Error() string {
	return fmt.Sprintf("未知的游戏代号 %s\n• 可用代号: %s",
		e.Game, strings.Join(normalize.SupportedGames, "、"))
}

// ReportRequest identifies one query. Game and Player are optional; the
// service falls back to the channel default and the user binding.
type ReportRequest struct {
	ChatID    string
	ChannelID string
	Game      string
	Player    string
	DataType  normalize.DataType
}

type Service struct {
	fetch       Fetcher
	binds       BindStore
	render      Renderer
	history     HistorySink
	defaultGame string
	log         *zap.SugaredLogger
}

func NewService(fetch Fetcher, binds BindStore, render Renderer, history HistorySink, defaultGame string, log *zap.SugaredLogger) *Service {
	return &Service{
		fetch:       fetch,
		binds:       binds,
		render:      render,
		history:     history,
		defaultGame: defaultGame,
		log:         log,
	}
}

// gameAliases maps alternate spellings onto canonical codes.
var gameAliases = map[string]string{
	"bf5": "bfv",
}

func canonicalGame(game string) string {
	game = strings.ToLower(strings.TrimSpace(game))
	if alias, ok := gameAliases[game]; ok {
		return alias
	}
	return game
}

func supportedGame(game string) bool {
	for _, g := range normalize.SupportedGames {
		if g == game {
			return true
		}
	}
	return false
}

// schemaFor picks the upstream backend. The two newest titles only publish
// through the tracker.
func schemaFor(game string) normalize.Schema {
	if game == "bf2042" || game == "bf6" {
		return normalize.SchemaBTR
	}
	return normalize.SchemaGT
}

// ResolveGame applies the explicit code, then the channel default, then the
// configured default, and validates the result.
func (s *Service) ResolveGame(ctx context.Context, explicit, channelID string) (string, error) {
	game := canonicalGame(explicit)
	if game == "" && channelID != "" {
		def, err := s.binds.QueryChannelDefault(ctx, channelID)
		switch {
		case err == nil:
			game = canonicalGame(def.Game)
		case errors.Is(err, bindings.ErrNotFound):
			// fall through to the configured default
		default:
			return "", err
		}
	}
	if game == "" {
		game = s.defaultGame
	}
	if !supportedGame(game) {
		return "", &UnknownGameError{Game: game}
	}
	return game, nil
}

// ResolvePlayer uses the explicit name or falls back to the user binding.
func (s *Service) ResolvePlayer(ctx context.Context, explicit, chatID string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	bind, err := s.binds.QueryUserBind(ctx, chatID)
	if errors.Is(err, bindings.ErrNotFound) {
		return "", ErrNoBinding
	}
	if err != nil {
		return "", err
	}
	return bind.EAName, nil
}

// Report resolves, fetches and normalizes one query, recording the outcome.
func (s *Service) Report(ctx context.Context, req ReportRequest) (*models.ReportBundle, error) {
	start := time.Now()

	game, err := s.ResolveGame(ctx, req.Game, req.ChannelID)
	if err != nil {
		return nil, err
	}
	player, err := s.ResolvePlayer(ctx, req.Player, req.ChatID)
	if err != nil {
		return nil, err
	}

	schema := schemaFor(game)
	var raw map[string]any
	if schema == normalize.SchemaBTR {
		raw, err = s.fetchBTR(ctx, game, player, req.DataType)
	} else {
		raw, err = s.fetch.GTPlayer(ctx, game, gtProp(req.DataType), player)
	}
	if err != nil {
		s.recordEvent(req, game, player, err, start)
		return nil, err
	}

	bundle, err := normalize.Normalize(raw, game, req.DataType, schema)
	s.recordEvent(req, game, player, err, start)
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

// ReportHTML runs Report and renders the bundle for the requested kind.
func (s *Service) ReportHTML(ctx context.Context, req ReportRequest) (string, error) {
	bundle, err := s.Report(ctx, req)
	if err != nil {
		return "", err
	}
	switch req.DataType {
	case normalize.DataWeapons:
		return s.render.Weapons(ctx, bundle)
	case normalize.DataVehicles:
		return s.render.Vehicles(ctx, bundle)
	case normalize.DataSoldiers:
		return s.render.Soldiers(ctx, bundle)
	default:
		return s.render.Main(ctx, bundle)
	}
}

// ReportText runs Report and projects the bundle to model-readable text.
func (s *Service) ReportText(ctx context.Context, req ReportRequest) (string, error) {
	bundle, err := s.Report(ctx, req)
	if err != nil {
		return "", err
	}
	return normalize.BuildLLMText(bundle), nil
}

// Servers fetches and normalizes the server list for a game.
func (s *Service) Servers(ctx context.Context, game, serverName string) (*models.ReportBundle, error) {
	game = canonicalGame(game)
	if !supportedGame(game) {
		return nil, &UnknownGameError{Game: game}
	}
	raw, err := s.fetch.GTServers(ctx, game, serverName)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(raw, game, normalize.DataServers, schemaFor(game))
}

// ServersHTML renders the server browser report.
func (s *Service) ServersHTML(ctx context.Context, game, serverName string) (string, error) {
	bundle, err := s.Servers(ctx, game, serverName)
	if err != nil {
		return "", err
	}
	return s.render.Servers(ctx, bundle)
}

// BindUser validates the EA name against the aggregator and stores the bind.
func (s *Service) BindUser(ctx context.Context, chatID, eaName string) (*models.UserBind, error) {
	eaID, err := s.fetch.LookupEAID(ctx, eaName)
	if err != nil {
		return nil, fmt.Errorf("EA账号 %s 校验失败: %w", eaName, err)
	}
	if err := s.binds.UpsertUserBind(ctx, chatID, eaName, eaID); err != nil {
		return nil, err
	}
	return &models.UserBind{ChatID: chatID, EAName: eaName, EAID: eaID}, nil
}

// BindChannel stores the default game for a channel.
func (s *Service) BindChannel(ctx context.Context, channelID, game string) (*models.ChannelDefault, error) {
	game = canonicalGame(game)
	if !supportedGame(game) {
		return nil, &UnknownGameError{Game: game}
	}
	if err := s.binds.UpsertChannelDefault(ctx, channelID, game); err != nil {
		return nil, err
	}
	return &models.ChannelDefault{ChannelID: channelID, Game: game}, nil
}

func gtProp(dataType normalize.DataType) string {
	switch dataType {
	case normalize.DataWeapons:
		return "weapons"
	case normalize.DataVehicles:
		return "vehicles"
	default:
		return "stats"
	}
}

// fetchBTR assembles the tracker envelope. bf6 ships everything in one typed
// segment list; 2042 splits by endpoint, so the per-kind responses are fanned
// out concurrently and merged onto the stat payload.
func (s *Service) fetchBTR(ctx context.Context, game, player string, dataType normalize.DataType) (map[string]any, error) {
	stat, err := s.fetch.FetchBTR(ctx, "/player/stat", player, game)
	if err != nil {
		return nil, err
	}
	if game == "bf6" {
		return stat, nil
	}

	props := map[string]string{}
	if dataType == normalize.DataStat || dataType == normalize.DataWeapons {
		props["weapons"] = "/player/weapons"
	}
	if dataType == normalize.DataStat || dataType == normalize.DataVehicles {
		props["vehicles"] = "/player/vehicles"
	}
	if dataType == normalize.DataStat || dataType == normalize.DataSoldiers {
		props["soldiers"] = "/player/soldiers"
	}

	var mu sync.Mutex
	results := make(map[string]map[string]any, len(props))
	g, gctx := errgroup.WithContext(ctx)
	for key, prop := range props {
		g.Go(func() error {
			raw, err := s.fetch.FetchBTR(gctx, prop, player, game)
			if err != nil {
				return err
			}
			mu.Lock()
			results[key] = raw
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for key, raw := range results {
		if segments, ok := raw["segments"]; ok {
			stat[key] = segments
		}
	}
	return stat, nil
}

// recordEvent emits one history event classified by how the query ended.
func (s *Service) recordEvent(req ReportRequest, game, player string, err error, start time.Time) {
	if s.history == nil {
		return
	}
	s.history.Record(models.QueryEvent{
		ChatID:    req.ChatID,
		Game:      game,
		DataType:  string(req.DataType),
		Player:    player,
		Outcome:   outcomeFor(err),
		LatencyMs: time.Since(start).Milliseconds(),
	})
}

func outcomeFor(err error) string {
	var upstream *normalize.UpstreamError
	var unsupported *normalize.UnsupportedError
	var malformed *normalize.MalformedPayloadError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.As(err, &unsupported):
		return "unsupported"
	case errors.As(err, &malformed):
		return "malformed"
	default:
		return "error"
	}
}
