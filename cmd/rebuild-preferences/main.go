package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/community-feed/internal/app"
	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	userID := flag.String("user", "", "rebuild only this user's preferences")
	flag.Parse()

	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx, *userID)
	if err != nil {
		logger.ErrorContext(ctx, "preference rebuild failed", "error", err,
			"rebuilt", result.Rebuilt, "failed", result.Failed)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "preference rebuild completed",
		"rebuilt", result.Rebuilt, "failed", result.Failed)
	if result.Failed > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, userID string) (command.RebuildUserPreferencesResult, error) {
	dataset, err := app.SetupDatasetRepository(ctx)
	if err != nil {
		return command.RebuildUserPreferencesResult{}, fmt.Errorf("setting up dataset repository: %w", err)
	}

	rebuildCmd := command.NewRebuildUserPreferences(dataset, dataset)
	return rebuildCmd.Execute(ctx, command.RebuildUserPreferencesRequest{UserID: userID})
}
