package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ScriptOption customizes a seeded script.
type ScriptOption func(*domain.Script)

// WithTitle sets the script title.
func WithTitle(title string) ScriptOption {
	return func(s *domain.Script) { s.Title = title }
}

// WithTags sets the script tags.
func WithTags(tags ...string) ScriptOption {
	return func(s *domain.Script) { s.Tags = tags }
}

// WithDescription sets the script description.
func WithDescription(d string) ScriptOption {
	return func(s *domain.Script) { s.Description = d }
}

// WithContent sets the script content.
func WithContent(c string) ScriptOption {
	return func(s *domain.Script) { s.Content = c }
}

// WithCreatedAt sets both timestamps.
func WithCreatedAt(ts time.Time) ScriptOption {
	return func(s *domain.Script) {
		s.CreatedAt = ts
		s.UpdatedAt = ts
	}
}

// SeedScript inserts a script directly, bypassing the repository, and returns it.
func SeedScript(t *testing.T, pool *pgxpool.Pool, opts ...ScriptOption) domain.Script {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Script{
		ID:          uuid.New(),
		Title:       "Script " + suffix,
		Tags:        []string{},
		Description: "Seeded " + suffix,
		Content:     "Body " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO scripts (id, title, tags, description, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Title, s.Tags, s.Description, s.Content, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScript insert: %v", err)
	}

	return s
}

// ScriptExists reports whether a script row with id exists.
func ScriptExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM scripts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: ScriptExists query: %v", err)
	}
	return exists
}
