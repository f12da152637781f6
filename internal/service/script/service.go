// Package script implements the storage-access operations for scripts:
// validated create and update, lookup, deletion and regex search.
package script

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

type scriptRepo interface {
	ListSummaries(ctx context.Context) ([]domain.ScriptSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Script, error)
	Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error)
	Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, pattern string) ([]domain.Script, error)
}

// Service provides script catalog operations.
type Service struct {
	scripts scriptRepo
	log     *slog.Logger
}

// NewService creates a new Script service.
func NewService(log *slog.Logger, scripts scriptRepo) *Service {
	return &Service{
		scripts: scripts,
		log:     log.With("service", "script"),
	}
}
