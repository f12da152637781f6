package script

import (
	"context"
	"fmt"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// ListSummaries returns the summary projection of every stored script.
// The result is never nil.
func (s *Service) ListSummaries(ctx context.Context) ([]domain.ScriptSummary, error) {
	list, err := s.scripts.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	if list == nil {
		list = []domain.ScriptSummary{}
	}
	return list, nil
}
