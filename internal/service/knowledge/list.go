package knowledge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/learnervocab"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// List returns the learner's tracked vocabulary with the vocabulary rows
// joined in, filtered and ordered per the filter. Ignored items are excluded
// unless the filter asks for them explicitly.
func (s *Service) List(ctx context.Context, learnerID uuid.UUID, filter domain.KnowledgeFilter) ([]learnervocab.ListItem, error) {
	for _, level := range filter.Levels {
		if !level.IsValid() {
			return nil, domain.NewValidationError("levels", fmt.Sprintf("unknown knowledge level: %s", level))
		}
	}

	return s.learnerVocab.List(ctx, learnerID, filter)
}
