package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/stendrelay/internal/config"
	"github.com/iudanet/stendrelay/internal/logging"
	"github.com/iudanet/stendrelay/internal/server/app"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level: cfg.LogLevel,
		JSON:  cfg.JSONLogs(),
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Stend relay starting",
		slog.String("version", Version),
		slog.String("commit", GitCommit),
		slog.String("addr", cfg.Addr()))

	relay, err := app.New(ctx, cfg, logger, Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := relay.Close(); err != nil {
			logger.Error("Failed to close resources", slog.Any("error", err))
		}
	}()

	if err := relay.Run(ctx); err != nil {
		return err
	}

	logger.Info("Stend relay stopped")
	return nil
}

func printVersion() {
	fmt.Printf("Stend Relay Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
