// Command seeder creates the storage schema: the Postgres binding tables and
// the ClickHouse query-event table. Safe to re-run; all statements are
// IF NOT EXISTS.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS user_binds (
	chat_id    TEXT PRIMARY KEY,
	ea_name    TEXT NOT NULL,
	ea_id      TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS channel_defaults (
	channel_id   TEXT PRIMARY KEY,
	default_game TEXT NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const clickhouseSchema = `
CREATE DATABASE IF NOT EXISTS bftool;

CREATE TABLE IF NOT EXISTS bftool.query_events (
	id         String,
	chat_id    String,
	game       LowCardinality(String),
	data_type  LowCardinality(String),
	player     String,
	outcome    LowCardinality(String),
	latency_ms Int64,
	at         DateTime64(3, 'UTC')
)
ENGINE = MergeTree()
PARTITION BY toYYYYMM(at)
ORDER BY (game, at)
`

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	pgURL := os.Getenv("POSTGRES_URL")
	chURL := os.Getenv("CLICKHOUSE_URL")
	if pgURL == "" || chURL == "" {
		fmt.Fprintln(os.Stderr, "POSTGRES_URL and CLICKHOUSE_URL must be set")
		os.Exit(1)
	}

	pg, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres connect: %v\n", err)
		os.Exit(1)
	}
	defer pg.Close()

	if _, err := pg.Exec(ctx, postgresSchema); err != nil {
		fmt.Fprintf(os.Stderr, "postgres schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("postgres schema applied")

	chOpts, err := clickhouse.ParseDSN(chURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clickhouse DSN: %v\n", err)
		os.Exit(1)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clickhouse connect: %v\n", err)
		os.Exit(1)
	}
	defer ch.Close()

	for _, stmt := range strings.Split(clickhouseSchema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := ch.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "clickhouse schema: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("clickhouse schema applied")
}
