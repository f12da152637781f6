// Command import-scripts bulk-loads scripts from a two-column CSV file
// (title, content) directly into PostgreSQL. It is intended to be run
// offline, not as part of the API server.
//
// Flags:
//
//	--file     path to the CSV file (default: importer.file from config)
//	--dry-run  parse and validate without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/scriptbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scriptbook-backend/internal/adapter/postgres/script"
	"github.com/heartmarshall/scriptbook-backend/internal/app"
	"github.com/heartmarshall/scriptbook-backend/internal/app/importer"
	"github.com/heartmarshall/scriptbook-backend/internal/config"
)

// Compile-time interface assertion.
var _ importer.ScriptBulkRepo = (*script.Repo)(nil)

func main() {
	fileFlag := flag.String("file", "", "path to the CSV file (default: importer.file from config)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	path := cfg.Importer.File
	if *fileFlag != "" {
		path = *fileFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := script.New(pool, postgres.NewTxManager(pool))

	res, err := importer.New(logger, repo).Run(ctx, path, *dryRunFlag)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Bool("dry_run", res.DryRun),
	)
}
