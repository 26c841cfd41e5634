// Dumps the most recent query events from ClickHouse. Debug utility.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/joho/godotenv"
)

func main() {
	limit := flag.Int("n", 20, "number of events to show")
	flag.Parse()

	_ = godotenv.Load()
	chURL := os.Getenv("CLICKHOUSE_URL")
	if chURL == "" {
		log.Fatal("CLICKHOUSE_URL must be set")
	}

	opts, err := clickhouse.ParseDSN(chURL)
	if err != nil {
		log.Fatal(err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()
	rows, err := conn.Query(ctx, `
		SELECT chat_id, game, data_type, player, outcome, latency_ms, at
		FROM bftool.query_events
		ORDER BY at DESC
		LIMIT ?
	`, *limit)
	if err != nil {
		log.Fatal(err)
	}
	defer rows.Close()

	for rows.Next() {
		var chatID, game, dataType, player, outcome string
		var latencyMs int64
		var at time.Time
		if err := rows.Scan(&chatID, &game, &dataType, &player, &outcome, &latencyMs, &at); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s  %-7s %-9s %-20s %-14s %5dms  chat=%s\n",
			at.Format(time.RFC3339), game, dataType, player, outcome, latencyMs, chatID)
	}
	if err := rows.Err(); err != nil {
		log.Fatal(err)
	}
}
