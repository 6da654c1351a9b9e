package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrianliechti/speech/config"
	"github.com/adrianliechti/speech/pkg/otel"
	"github.com/adrianliechti/speech/server"

	"github.com/lmittmann/tint"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	level := slog.LevelInfo

	if otel.EnableDebug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	if err := run(*configFlag, *addressFlag); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(path, address string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if otel.EnableTelemetry {
		shutdown, err := otel.Setup(ctx, "speech", version)

		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		defer shutdown(context.Background())
	}

	cfg, err := config.Parse(path)

	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if address != "" {
		cfg.Address = address
	}

	s, err := server.New(cfg)

	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return s.ListenAndServe(ctx)
}
