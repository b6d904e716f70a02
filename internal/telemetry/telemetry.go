// Package telemetry sets up the process-wide slog logger and the OpenTelemetry
// tracer provider. Prometheus collectors are registered by the packages that
// own them and exposed by the HTTP router.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "insightchat"

// ParseLevel maps a LOG_LEVEL value onto a slog level. Unknown values are INFO.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger installs a JSON slog logger as the default. Output goes to out
// and, when logFile is set, to a rotating file as well. The returned func
// closes the file.
func SetupLogger(out io.Writer, logLevel, logFile string) (func(), error) {
	closer := func() {}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := rotatingFile(logFile)
		out = io.MultiWriter(out, rotating)
		closer = func() { _ = rotating.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}))
	slog.SetDefault(logger)
	return closer, nil
}

// SetupTracing installs a tracer provider. Spans are written to traceFile when
// it is set; otherwise the provider records nothing. The returned func flushes
// pending spans and closes the file.
func SetupTracing(ctx context.Context, traceFile string) (func(), error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	var file *lumberjack.Logger
	if traceFile != "" {
		if err := os.MkdirAll(filepath.Dir(traceFile), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create trace directory: %w", err)
		}
		file = rotatingFile(traceFile)
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(file))
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down tracer provider", "error", err)
		}
		if file != nil {
			if err := file.Close(); err != nil {
				slog.Error("Failed to close trace file", "error", err)
			}
		}
	}
	return cleanup, nil
}

func rotatingFile(name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   name,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}
