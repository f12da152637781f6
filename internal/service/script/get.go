package script

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// GetByID returns the full record of one script or domain.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Script, error) {
	script, err := s.scripts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}
	return script, nil
}
