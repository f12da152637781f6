package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a script permanently. Deleting an absent id returns
// domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.scripts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete script: %w", err)
	}

	s.log.InfoContext(ctx, "script deleted", slog.String("script_id", id.String()))

	return nil
}
