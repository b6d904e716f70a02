package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/api"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/config"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/telemetry"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/workspace"
)

// App is the assembled server: one workspace behind the HTTP API.
type App struct {
	Server    *http.Server
	Workspace *workspace.Workspace
}

// NewApp wires the backend client, the workspace and the router from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg.BackendURL == "" {
		return nil, errors.New("BACKEND_URL must be set")
	}

	client := backend.NewHTTPClient(cfg.BackendURL, cfg.RequestTimeout)
	ws := workspace.New(client)

	router := api.NewRouter(
		api.NewSessionHandler(ws),
		api.NewModalHandler(ws),
		api.NewDashboardHandler(ws),
		cfg.RequestTimeout+5*time.Second,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for the events feed
		IdleTimeout:       120 * time.Second,
	}
	server.RegisterOnShutdown(ws.Close)

	return &App{Server: server, Workspace: ws}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	closeLog, err := telemetry.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		return 1
	}
	defer closeLog()

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.TraceFile)
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		return 1
	}
	defer shutdownTracing()

	checkBackend(cfg.BackendURL)

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}

	go func() {
		// Warm the chat directory so the first page load has something to show.
		if err := app.Workspace.RefreshChats(ctx); err != nil {
			slog.Warn("Initial chat directory refresh failed", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "backend_url", cfg.BackendURL)
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// checkBackend logs whether the analytics backend answers. The server starts
// either way; requests fail on the transport path until it is up.
func checkBackend(backendURL string) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(backendURL + "/health")
	if err != nil {
		slog.Warn("Analytics backend is not reachable yet", "url", backendURL, "error", err)
		return
	}
	if bErr := resp.Body.Close(); bErr != nil {
		slog.Warn("Failed to close response body in backend health check", "error", bErr)
	}
	slog.Info("Analytics backend is reachable.", "url", backendURL, "status", resp.StatusCode)
}
