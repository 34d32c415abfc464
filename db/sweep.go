// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
)

// StartCacheSweeper prunes idle render-cache rows on a cron schedule.
// The schedule is a standard 5-field cron expression; "off" disables the
// sweeper entirely. Entries untouched for longer than ttl are removed.
func StartCacheSweeper(conn *sql.DB, schedule string, ttl time.Duration) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" || strings.EqualFold(schedule, "off") {
		slog.Info("cache sweeper disabled")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		slog.Error("invalid cache sweep schedule, sweeper disabled", "schedule", schedule, "error", err)
		return
	}

	slog.Info("cache sweeper scheduled", "schedule", schedule, "ttl", ttl.String())

	go func() {
		for {
			now := time.Now()
			time.Sleep(sched.Next(now).Sub(now))

			pruned, err := PruneCache(conn, time.Now().Add(-ttl))
			if err != nil {
				slog.Error("cache sweep failed", "error", err)
				continue
			}
			if pruned > 0 {
				slog.Info("cache sweep complete", "pruned", humanize.Comma(pruned))
			}
		}
	}()
}
