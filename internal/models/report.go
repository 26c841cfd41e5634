package models

import "time"

// ReportBundle is the normalized result for one query. Slots that do not
// apply to the requested report stay as empty, non-nil slices.
type ReportBundle struct {
	Player      *PlayerStats `json:"player_stats,omitempty"`
	Weapons     []Weapon     `json:"weapons"`
	Vehicles    []Vehicle    `json:"vehicles"`
	Soldiers    []Soldier    `json:"soldiers"`
	Servers     []Server     `json:"servers"`
	Game        string       `json:"game"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// NewReportBundle returns a bundle with all collection slots initialized.
func NewReportBundle(game string) *ReportBundle {
	return &ReportBundle{
		Weapons:     []Weapon{},
		Vehicles:    []Vehicle{},
		Soldiers:    []Soldier{},
		Servers:     []Server{},
		Game:        game,
		GeneratedAt: time.Now().UTC(),
	}
}

// UserBind links a chat user to an EA identity.
type UserBind struct {
	ChatID    string    `json:"chat_id"`
	EAName    string    `json:"ea_name"`
	EAID      string    `json:"ea_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChannelDefault records the default game for a chat channel.
type ChannelDefault struct {
	ChannelID string    `json:"channel_id"`
	Game      string    `json:"game"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BindUserRequest is the payload for POST /bindings/user.
type BindUserRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
	EAName string `json:"ea_name" validate:"required,min=1,max=64"`
}

// BindChannelRequest is the payload for POST /bindings/channel.
type BindChannelRequest struct {
	ChannelID string `json:"channel_id" validate:"required"`
	Game      string `json:"game" validate:"required"`
}

// QueryEvent is one recorded report lookup, written to ClickHouse in batches.
type QueryEvent struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Game      string    `json:"game"`
	DataType  string    `json:"data_type"`
	Player    string    `json:"player"`
	Outcome   string    `json:"outcome"` // ok | upstream_error | unsupported | malformed
	LatencyMs int64     `json:"latency_ms"`
	At        time.Time `json:"at"`
}
