// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging builds the process-wide slog logger.

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

Levels: debug, info, warn, error (unknown values fall back to info).
Formats: "text", "json", or "auto", which selects text when stdout is a
terminal and JSON when it is piped or captured.
*/
package logging
