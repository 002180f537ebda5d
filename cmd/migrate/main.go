package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies pending SQL migrations from the migrations/ directory using the
// atlas CLI. Intended for deploy pipelines and local setup, not the server
// process itself.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err.Error())
		os.Exit(1)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations?format=golang-migrate",
	})
	if err != nil {
		logger.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
}
