// Command insightchat is a terminal client for the analytics backend.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/config"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/telemetry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they never mix with rendered results.
	closeLog, err := telemetry.SetupLogger(os.Stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	closeLog()
	os.Exit(code)
}
