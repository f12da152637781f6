package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Search returns scripts whose title, description, content or any tag
// matches pattern as a case-insensitive regular expression.
// An empty or malformed pattern yields an empty result without error.
func (s *Service) Search(ctx context.Context, pattern string) ([]domain.Script, error) {
	if pattern == "" {
		return []domain.Script{}, nil
	}

	if _, err := regexp.Compile("(?i)" + pattern); err != nil {
		s.log.DebugContext(ctx, "search pattern rejected",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()),
		)
		return []domain.Script{}, nil
	}

	found, err := s.scripts.Search(ctx, pattern)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return []domain.Script{}, nil
		}
		return nil, fmt.Errorf("search scripts: %w", err)
	}
	if found == nil {
		found = []domain.Script{}
	}

	return found, nil
}
