// Package aggregate computes learner-facing read models: per-content
// knowledge level histograms, meaning-annotated knowledge lists and
// known-learner counts. All operations are pure reads and batch their
// database access, so callers can pass any number of ids without
// multiplying queries.
package aggregate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/contentlink"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

type linkRepo interface {
	LevelCounts(ctx context.Context, contentIDs []uuid.UUID, learnerID uuid.UUID) ([]contentlink.LevelCount, error)
}

type contentRepo interface {
	GetFlagsByContentIDs(ctx context.Context, learnerID uuid.UUID, contentIDs []uuid.UUID) (map[uuid.UUID]domain.LearnerContentFlags, error)
}

type meaningRepo interface {
	GetByVocabularyIDs(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID) (map[uuid.UUID][]domain.VocabularyMeaning, error)
}

type learnerVocabRepo interface {
	CountKnownByVocabularyIDs(ctx context.Context, vocabularyIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// Service provides batched aggregation queries.
type Service struct {
	links        linkRepo
	content      contentRepo
	meanings     meaningRepo
	learnerVocab learnerVocabRepo
	log          *slog.Logger
}

// NewService creates a new aggregate service.
func NewService(
	log *slog.Logger,
	links linkRepo,
	content contentRepo,
	meanings meaningRepo,
	learnerVocab learnerVocabRepo,
) *Service {
	return &Service{
		links:        links,
		content:      content,
		meanings:     meanings,
		learnerVocab: learnerVocab,
		log:          log.With("service", "aggregate"),
	}
}

// LevelHistograms returns, for each requested content item, how its linked
// vocabulary distributes over the learner's knowledge levels. Vocabulary the
// learner does not track counts as untracked. Content with no links gets an
// all-zero histogram, so every requested id is present in the result.
func (s *Service) LevelHistograms(ctx context.Context, learnerID uuid.UUID, contentIDs []uuid.UUID) (map[uuid.UUID]domain.LevelHistogram, error) {
	result := make(map[uuid.UUID]domain.LevelHistogram, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	for _, id := range contentIDs {
		result[id] = domain.NewLevelHistogram()
	}

	counts, err := s.links.LevelCounts(ctx, contentIDs, learnerID)
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		h := result[c.ContentID]
		if c.Level == nil {
			h.Untracked += c.Count
		} else {
			h.Counts[*c.Level] += c.Count
		}
		result[c.ContentID] = h
	}

	return result, nil
}

// KnownCounts returns, for each vocabulary id, how many learners hold it at
// KNOWN. Ids nobody knows map to zero.
func (s *Service) KnownCounts(ctx context.Context, vocabularyIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int, len(vocabularyIDs))
	if len(vocabularyIDs) == 0 {
		return result, nil
	}

	counts, err := s.learnerVocab.CountKnownByVocabularyIDs(ctx, vocabularyIDs)
	if err != nil {
		return nil, err
	}

	for _, id := range vocabularyIDs {
		result[id] = counts[id]
	}

	return result, nil
}
