// Package importer loads scripts from a CSV export straight into the
// database, bypassing the HTTP API. It is intended to be run offline.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// ScriptBulkRepo is the storage contract of the importer.
// Implemented by script.Repo.
type ScriptBulkRepo interface {
	BulkInsert(ctx context.Context, scripts []domain.ScriptFields) (int, error)
}

// Result summarizes one import run.
type Result struct {
	Parsed   int
	Skipped  int
	Inserted int
	DryRun   bool
	Duration time.Duration
}

// Importer parses a CSV file and stores its rows in one batch.
type Importer struct {
	log  *slog.Logger
	repo ScriptBulkRepo
}

// New creates an Importer.
func New(log *slog.Logger, repo ScriptBulkRepo) *Importer {
	return &Importer{log: log.With("component", "importer"), repo: repo}
}

// Run imports path. With dryRun set the file is parsed and validated but
// nothing is written. Rows that fail validation are skipped with a warning.
func (im *Importer) Run(ctx context.Context, path string, dryRun bool) (Result, error) {
	start := time.Now()
	res := Result{DryRun: dryRun}

	parsed, err := ParseFile(path)
	if err != nil {
		return res, err
	}
	res.Skipped = parsed.Skipped

	valid := make([]domain.ScriptFields, 0, len(parsed.Scripts))
	for i, f := range parsed.Scripts {
		if err := domain.ValidateScript(f).Err(); err != nil {
			im.log.WarnContext(ctx, "row rejected",
				slog.Int("row", i+1),
				slog.String("title", f.Title),
				slog.String("error", err.Error()),
			)
			res.Skipped++
			continue
		}
		valid = append(valid, f)
	}
	res.Parsed = len(valid)

	im.log.InfoContext(ctx, "import file parsed",
		slog.String("file", path),
		slog.Int("rows", res.Parsed),
		slog.Int("skipped", res.Skipped),
	)

	if dryRun || len(valid) == 0 {
		res.Duration = time.Since(start)
		return res, nil
	}

	inserted, err := im.repo.BulkInsert(ctx, valid)
	if err != nil {
		return res, fmt.Errorf("insert scripts: %w", err)
	}
	res.Inserted = inserted
	res.Duration = time.Since(start)

	im.log.InfoContext(ctx, "scripts imported",
		slog.Int("inserted", inserted),
		slog.Duration("duration", res.Duration),
	)

	return res, nil
}
