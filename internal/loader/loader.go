// Package loader provides per-request DataLoaders that batch read-model
// lookups into single SQL calls. Loaders call repositories directly,
// bypassing the service layer. Learner scoping happens in SQL (learner_id
// filters in repo queries).
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/contentlink"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

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
	GetByVocabularyIDs(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID) (map[uuid.UUID]domain.LearnerVocabulary, error)
	CountKnownByVocabularyIDs(ctx context.Context, vocabularyIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// Repos holds all repositories required by the loaders.
type Repos struct {
	Links        linkRepo
	Content      contentRepo
	Meanings     meaningRepo
	LearnerVocab learnerVocabRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders, all scoped to one learner.
// Created per-request via NewLoaders (loaders cache results within a single
// request).
type Loaders struct {
	HistogramByContentID     *dataloader.Loader[uuid.UUID, domain.LevelHistogram]
	FlagsByContentID         *dataloader.Loader[uuid.UUID, domain.LearnerContentFlags]
	MeaningsByVocabularyID   *dataloader.Loader[uuid.UUID, []domain.VocabularyMeaning]
	KnowledgeByVocabularyID  *dataloader.Loader[uuid.UUID, *domain.LearnerVocabulary]
	KnownCountByVocabularyID *dataloader.Loader[uuid.UUID, int]
}

// NewLoaders creates a new set of DataLoaders for one learner's request.
func NewLoaders(repos *Repos, learnerID uuid.UUID) *Loaders {
	return &Loaders{
		HistogramByContentID:     newLoader(newHistogramBatchFn(repos.Links, learnerID)),
		FlagsByContentID:         newLoader(newFlagsBatchFn(repos.Content, learnerID)),
		MeaningsByVocabularyID:   newLoader(newMeaningsBatchFn(repos.Meanings, learnerID)),
		KnowledgeByVocabularyID:  newLoader(newKnowledgeBatchFn(repos.LearnerVocab, learnerID)),
		KnownCountByVocabularyID: newLoader(newKnownCountBatchFn(repos.LearnerVocab)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context — is middleware configured?")
	}
	return l
}
