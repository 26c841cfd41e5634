// Package bindings persists the lightweight chat preferences: which EA
// identity a chat user is bound to, and which game a channel defaults to.
package bindings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/BayHyn/battlefield-tool/internal/models"
)

// ErrNotFound is returned when no binding exists for the key.
var ErrNotFound = errors.New("binding not found")

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Store struct {
	db  PgPool
	log *zap.SugaredLogger
}

func New(db PgPool, log *zap.SugaredLogger) *Store {
	return &Store{db: db, log: log}
}

// UpsertUserBind stores or replaces the EA identity for a chat user.
func (s *Store) UpsertUserBind(ctx context.Context, chatID, eaName, eaID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_binds (chat_id, ea_name, ea_id, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET ea_name = EXCLUDED.ea_name, ea_id = EXCLUDED.ea_id, updated_at = NOW()`,
		chatID, eaName, eaID)
	if err != nil {
		return fmt.Errorf("upsert user bind: %w", err)
	}
	s.log.Infow("user bind saved", "chat_id", chatID, "ea_name", eaName)
	return nil
}

// QueryUserBind looks up the EA identity bound to a chat user.
func (s *Store) QueryUserBind(ctx context.Context, chatID string) (*models.UserBind, error) {
	var b models.UserBind
	err := s.db.QueryRow(ctx, `
		SELECT chat_id, ea_name, ea_id, updated_at
		FROM user_binds WHERE chat_id = $1`, chatID).
		Scan(&b.ChatID, &b.EAName, &b.EAID, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user bind: %w", err)
	}
	return &b, nil
}

// UpsertChannelDefault stores or replaces a channel's default game.
func (s *Store) UpsertChannelDefault(ctx context.Context, channelID, game string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO channel_defaults (channel_id, default_game, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (channel_id)
		DO UPDATE SET default_game = EXCLUDED.default_game, updated_at = NOW()`,
		channelID, game)
	if err != nil {
		return fmt.Errorf("upsert channel default: %w", err)
	}
	s.log.Infow("channel default saved", "channel_id", channelID, "game", game)
	return nil
}

// QueryChannelDefault looks up a channel's default game.
func (s *Store) QueryChannelDefault(ctx context.Context, channelID string) (*models.ChannelDefault, error) {
	var d models.ChannelDefault
	err := s.db.QueryRow(ctx, `
		SELECT channel_id, default_game, updated_at
		FROM channel_defaults WHERE channel_id = $1`, channelID).
		Scan(&d.ChannelID, &d.Game, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query channel default: %w", err)
	}
	return &d, nil
}
