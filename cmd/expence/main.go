package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abdulkader3/expence-go/internal/client/api"
	"github.com/abdulkader3/expence-go/internal/client/auth"
	"github.com/abdulkader3/expence-go/internal/client/cli"
	"github.com/abdulkader3/expence-go/internal/client/config"
	"github.com/abdulkader3/expence-go/internal/client/iocli"
	"github.com/abdulkader3/expence-go/internal/client/ledger"
	"github.com/abdulkader3/expence-go/internal/client/storage/boltdb"
	"github.com/abdulkader3/expence-go/internal/client/sync"
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

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	led, err := ledger.New(ctx, cfg.LedgerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := led.Close(); err != nil {
			logger.Error("failed to close ledger", "error", err)
		}
	}()

	creds := auth.NewCredentialStore(boltStorage, boltStorage)

	apiClient := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenSource(creds),
		api.WithLogger(logger),
	)

	session := auth.NewSession(apiClient, creds, logger)
	syncService := sync.NewService(apiClient, session, boltStorage, boltStorage, led, cfg.Sync, logger)

	c := cli.New(iocli.NewStdio(), apiClient, session, syncService, led, cfg.DeviceName)
	c.Run(ctx, command, args[1:])
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("Expence Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
