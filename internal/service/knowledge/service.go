// Package knowledge manages per-learner vocabulary knowledge: the tracked
// state, knowledge level and notes a learner holds for each vocabulary item.
package knowledge

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/learnervocab"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

type learnerVocabRepo interface {
	Get(ctx context.Context, learnerID, vocabularyID uuid.UUID) (domain.LearnerVocabulary, error)
	Create(ctx context.Context, learnerID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error)
	UpdateLevel(ctx context.Context, learnerID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error)
	UpdateNotes(ctx context.Context, learnerID, vocabularyID uuid.UUID, notes *string) (domain.LearnerVocabulary, error)
	BulkCreate(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID, level domain.KnowledgeLevel) (int, error)
	List(ctx context.Context, learnerID uuid.UUID, filter domain.KnowledgeFilter) ([]learnervocab.ListItem, error)
}

type vocabularyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vocabulary, error)
}

type contentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
}

type linkRepo interface {
	GetVocabularyIDs(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error)
}

type learnerRepo interface {
	IsLearningLanguage(ctx context.Context, learnerID uuid.UUID, langCode string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides learner knowledge operations.
type Service struct {
	learnerVocab learnerVocabRepo
	vocabulary   vocabularyRepo
	content      contentRepo
	links        linkRepo
	learners     learnerRepo
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new knowledge service.
func NewService(
	log *slog.Logger,
	learnerVocab learnerVocabRepo,
	vocabulary vocabularyRepo,
	content contentRepo,
	links linkRepo,
	learners learnerRepo,
	tx txManager,
) *Service {
	return &Service{
		learnerVocab: learnerVocab,
		vocabulary:   vocabulary,
		content:      content,
		links:        links,
		learners:     learners,
		tx:           tx,
		log:          log.With("service", "knowledge"),
	}
}

// Get returns the learner's knowledge record for a vocabulary item.
// Returns domain.ErrNotFound when the vocabulary is untracked.
func (s *Service) Get(ctx context.Context, learnerID, vocabularyID uuid.UUID) (domain.LearnerVocabulary, error) {
	return s.learnerVocab.Get(ctx, learnerID, vocabularyID)
}

// checkLearnsLanguage enforces that knowledge rows only exist for languages
// the learner actually studies.
func (s *Service) checkLearnsLanguage(ctx context.Context, learnerID uuid.UUID, langCode string) error {
	learning, err := s.learners.IsLearningLanguage(ctx, learnerID, langCode)
	if err != nil {
		return err
	}
	if !learning {
		return domain.NewValidationError("language_code", "learner is not studying this language")
	}
	return nil
}
