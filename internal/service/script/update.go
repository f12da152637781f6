package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Update replaces all mutable fields of the script. Validation runs before
// the store is touched, so a rejected update leaves the record unchanged.
func (s *Service) Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error) {
	if err := domain.ValidateScript(f).Err(); err != nil {
		return nil, err
	}

	script, err := s.scripts.Update(ctx, id, domain.NormalizeFields(f))
	if err != nil {
		return nil, fmt.Errorf("update script: %w", err)
	}

	s.log.InfoContext(ctx, "script updated",
		slog.String("script_id", script.ID.String()),
		slog.String("title", script.Title),
	)

	return script, nil
}
