package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/abjago/threepp/cliparse"
	"github.com/abjago/threepp/db"
	"github.com/abjago/threepp/handlers"
	"github.com/abjago/threepp/logging"
	"github.com/abjago/threepp/middleware"
	"github.com/abjago/threepp/router"
)

func main() {
	var err error

	// Load .env if present; a missing file is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.LogLevel, cfg.LogFormat))

	// Connect to the database (sqlite file or postgres URL)
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// sqlite serializes writers; a single connection avoids busy errors
	if cfg.DatabaseType == "sqlite" {
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed preset scenarios, if configured
	if cfg.PresetsPath != "" {
		presets, err := db.LoadPresets(cfg.PresetsPath)
		if err != nil {
			slog.Error("presets load failed", "path", cfg.PresetsPath, "error", err)
			os.Exit(1)
		}
		// A preset that cannot render is a deployment mistake
		for _, p := range presets {
			if _, err := handlers.ParseGraphQuery(handlers.ParamsToQuery(p.Params), cfg.MaxPoints); err != nil {
				slog.Error("invalid preset", "preset", p.Name, "error", err)
				os.Exit(1)
			}
		}
		if err := db.SeedPresets(dbConn, presets, cfg.SlugSalt, time.Now()); err != nil {
			slog.Error("presets seed failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Presets seeded", "count", len(presets))
	}

	// Background render-cache pruning
	db.StartCacheSweeper(dbConn, cfg.CacheSweep, cfg.CacheTTL)

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
