// Package script implements the Script repository using PostgreSQL.
// Queries are built with squirrel; bulk inserts go through pgx.Batch inside
// a single transaction.
package script

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/scriptbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

const table = "scripts"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	summaryColumns = []string{"id", "title", "tags", "description"}
	scriptColumns  = []string{"id", "title", "tags", "description", "content", "created_at", "updated_at"}
)

// Repo provides script persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new script repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListSummaries returns every script projected to its summary, newest first.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) ListSummaries(ctx context.Context) ([]domain.ScriptSummary, error) {
	query, args, err := psql.Select(summaryColumns...).
		From(table).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ScriptSummary, 0)
	for rows.Next() {
		var s domain.ScriptSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Tags, &s.Description); err != nil {
			return nil, fmt.Errorf("scan script summary: %w", err)
		}
		result = append(result, normalizeSummary(s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	return result, nil
}

// GetByID returns a script by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Script, error) {
	query, args, err := psql.Select(scriptColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	s, err := scanScript(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "script", id)
	}

	return s, nil
}

// Search returns scripts whose title, description, content or any tag
// matches pattern as a case-insensitive POSIX regular expression.
// A pattern PostgreSQL refuses to compile yields an empty result.
func (r *Repo) Search(ctx context.Context, pattern string) ([]domain.Script, error) {
	query, args, err := psql.Select(scriptColumns...).
		From(table).
		Where(sq.Or{
			sq.Expr("title ~* ?", pattern),
			sq.Expr("description ~* ?", pattern),
			sq.Expr("content ~* ?", pattern),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ~* ?)", pattern),
		}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	result, err := r.collectScripts(ctx, query, args)
	if err != nil {
		if postgres.IsInvalidRegex(err) {
			return []domain.Script{}, nil
		}
		return nil, postgres.MapError(err, "script search", fmt.Sprintf("%q", pattern))
	}

	return result, nil
}

func (r *Repo) collectScripts(ctx context.Context, query string, args []any) ([]domain.Script, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Script, 0)
	for rows.Next() {
		s, err := scanScript(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a script and returns the stored row with its generated id
// and timestamps.
func (r *Repo) Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error) {
	f = domain.NormalizeFields(f)

	query, args, err := psql.Insert(table).
		Columns("title", "tags", "description", "content").
		Values(f.Title, f.Tags, f.Description, f.Content).
		Suffix("RETURNING " + columnList(scriptColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	s, err := scanScript(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "script", f.Title)
	}

	return s, nil
}

// Update replaces every mutable field of a script and bumps updated_at.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error) {
	f = domain.NormalizeFields(f)

	query, args, err := psql.Update(table).
		Set("title", f.Title).
		Set("tags", f.Tags).
		Set("description", f.Description).
		Set("content", f.Content).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(scriptColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	s, err := scanScript(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "script", id)
	}

	return s, nil
}

// Delete removes a script by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "script", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("script %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

const bulkInsertSQL = `
INSERT INTO scripts (title, tags, description, content)
VALUES ($1, $2, $3, $4)`

// BulkInsert inserts all scripts in one transaction using a pgx batch and
// returns the number of inserted rows. Either every row is stored or none.
func (r *Repo) BulkInsert(ctx context.Context, scripts []domain.ScriptFields) (int, error) {
	if len(scripts) == 0 {
		return 0, nil
	}

	var inserted int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		batch := &pgx.Batch{}
		for _, f := range scripts {
			f = domain.NormalizeFields(f)
			batch.Queue(bulkInsertSQL, f.Title, f.Tags, f.Description, f.Content)
		}

		br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
		defer br.Close()

		for i := range scripts {
			tag, err := br.Exec()
			if err != nil {
				return postgres.MapError(err, "script", fmt.Sprintf("#%d", i+1))
			}
			inserted += int(tag.RowsAffected())
		}

		return br.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("bulk insert scripts: %w", err)
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanScript(row pgx.Row) (*domain.Script, error) {
	var s domain.Script
	if err := row.Scan(&s.ID, &s.Title, &s.Tags, &s.Description, &s.Content, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return &s, nil
}

func normalizeSummary(s domain.ScriptSummary) domain.ScriptSummary {
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return s
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}
