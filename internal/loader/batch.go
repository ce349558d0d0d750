package loader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Level histogram by ContentID
// ---------------------------------------------------------------------------

func newHistogramBatchFn(repo linkRepo, learnerID uuid.UUID) dataloader.BatchFunc[uuid.UUID, domain.LevelHistogram] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.LevelHistogram] {
		counts, err := repo.LevelCounts(ctx, keys, learnerID)
		if err != nil {
			return errorResults[domain.LevelHistogram](len(keys), err)
		}

		grouped := make(map[uuid.UUID]domain.LevelHistogram, len(keys))
		for _, key := range keys {
			grouped[key] = domain.NewLevelHistogram()
		}
		for _, c := range counts {
			h := grouped[c.ContentID]
			if c.Level == nil {
				h.Untracked += c.Count
			} else {
				h.Counts[*c.Level] += c.Count
			}
			grouped[c.ContentID] = h
		}

		return mapResults(keys, grouped, domain.NewLevelHistogram)
	}
}

// ---------------------------------------------------------------------------
// Learner flags by ContentID
// ---------------------------------------------------------------------------

func newFlagsBatchFn(repo contentRepo, learnerID uuid.UUID) dataloader.BatchFunc[uuid.UUID, domain.LearnerContentFlags] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.LearnerContentFlags] {
		flags, err := repo.GetFlagsByContentIDs(ctx, learnerID, keys)
		if err != nil {
			return errorResults[domain.LearnerContentFlags](len(keys), err)
		}

		results := make([]*dataloader.Result[domain.LearnerContentFlags], len(keys))
		for i, key := range keys {
			f, ok := flags[key]
			if !ok {
				f = domain.LearnerContentFlags{ContentID: key}
			}
			results[i] = &dataloader.Result[domain.LearnerContentFlags]{Data: f}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Meanings by VocabularyID
// ---------------------------------------------------------------------------

func newMeaningsBatchFn(repo meaningRepo, learnerID uuid.UUID) dataloader.BatchFunc[uuid.UUID, []domain.VocabularyMeaning] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.VocabularyMeaning] {
		meanings, err := repo.GetByVocabularyIDs(ctx, learnerID, keys)
		if err != nil {
			return errorResults[[]domain.VocabularyMeaning](len(keys), err)
		}

		return mapResults(keys, meanings, emptySlice[domain.VocabularyMeaning])
	}
}

// ---------------------------------------------------------------------------
// Knowledge record by VocabularyID (1:1 nullable)
// ---------------------------------------------------------------------------

func newKnowledgeBatchFn(repo learnerVocabRepo, learnerID uuid.UUID) dataloader.BatchFunc[uuid.UUID, *domain.LearnerVocabulary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.LearnerVocabulary] {
		records, err := repo.GetByVocabularyIDs(ctx, learnerID, keys)
		if err != nil {
			return errorResults[*domain.LearnerVocabulary](len(keys), err)
		}

		results := make([]*dataloader.Result[*domain.LearnerVocabulary], len(keys))
		for i, key := range keys {
			if r, ok := records[key]; ok {
				record := r // copy to avoid aliasing
				results[i] = &dataloader.Result[*domain.LearnerVocabulary]{Data: &record}
			} else {
				results[i] = &dataloader.Result[*domain.LearnerVocabulary]{Data: nil}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Known learner count by VocabularyID
// ---------------------------------------------------------------------------

func newKnownCountBatchFn(repo learnerVocabRepo) dataloader.BatchFunc[uuid.UUID, int] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[int] {
		counts, err := repo.CountKnownByVocabularyIDs(ctx, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}

		results := make([]*dataloader.Result[int], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[int]{Data: counts[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[V any]() []V {
	return []V{}
}
