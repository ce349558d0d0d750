package aggregate

import (
	"context"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// AnnotateMeanings attaches the learner's meanings to each knowledge record,
// loading all meanings in a single batched query. Records without meanings
// get an empty slice.
func (s *Service) AnnotateMeanings(ctx context.Context, learnerID uuid.UUID, records []domain.LearnerVocabulary) ([]domain.LearnerVocabularyWithMeanings, error) {
	result := make([]domain.LearnerVocabularyWithMeanings, 0, len(records))
	if len(records) == 0 {
		return result, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(records))
	vocabularyIDs := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.VocabularyID]; ok {
			continue
		}
		seen[r.VocabularyID] = struct{}{}
		vocabularyIDs = append(vocabularyIDs, r.VocabularyID)
	}

	meanings, err := s.meanings.GetByVocabularyIDs(ctx, learnerID, vocabularyIDs)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		m := meanings[r.VocabularyID]
		if m == nil {
			m = []domain.VocabularyMeaning{}
		}
		result = append(result, domain.LearnerVocabularyWithMeanings{
			LearnerVocabulary: r,
			Meanings:          m,
		})
	}

	return result, nil
}

// AnnotateContent decorates content items with the learner's level histogram
// and per-content flags. Two batched queries regardless of item count.
// Items the learner never touched get zero-value flags.
func (s *Service) AnnotateContent(ctx context.Context, learnerID uuid.UUID, items []domain.ContentItem) ([]domain.ContentWithUserData, error) {
	result := make([]domain.ContentWithUserData, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}

	contentIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		contentIDs[i] = item.ID
	}

	histograms, err := s.LevelHistograms(ctx, learnerID, contentIDs)
	if err != nil {
		return nil, err
	}

	flags, err := s.content.GetFlagsByContentIDs(ctx, learnerID, contentIDs)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		f, ok := flags[item.ID]
		if !ok {
			f = domain.LearnerContentFlags{ContentID: item.ID}
		}
		result = append(result, domain.ContentWithUserData{
			Content:   item,
			Histogram: histograms[item.ID],
			Flags:     f,
		})
	}

	return result, nil
}
