package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Create validates f and stores it as a new script. Every violated
// constraint is reported in a single *domain.ValidationError.
func (s *Service) Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error) {
	if err := domain.ValidateScript(f).Err(); err != nil {
		return nil, err
	}

	script, err := s.scripts.Create(ctx, domain.NormalizeFields(f))
	if err != nil {
		return nil, fmt.Errorf("create script: %w", err)
	}

	s.log.InfoContext(ctx, "script created",
		slog.String("script_id", script.ID.String()),
		slog.String("title", script.Title),
	)

	return script, nil
}
