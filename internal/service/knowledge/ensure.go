package knowledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Ensure returns the learner's knowledge record for a vocabulary item,
// creating it at the default level if the item is untracked. Safe to call
// concurrently for the same pair: the loser of an insert race re-reads the
// winner's row.
func (s *Service) Ensure(ctx context.Context, learnerID, vocabularyID uuid.UUID) (domain.LearnerVocabulary, error) {
	var result domain.LearnerVocabulary

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		vocab, err := s.vocabulary.GetByID(ctx, vocabularyID)
		if err != nil {
			return fmt.Errorf("get vocabulary: %w", err)
		}

		if err := s.checkLearnsLanguage(ctx, learnerID, vocab.LanguageCode); err != nil {
			return err
		}

		existing, err := s.learnerVocab.Get(ctx, learnerID, vocabularyID)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		created, err := s.learnerVocab.Create(ctx, learnerID, vocabularyID, domain.KnowledgeLevelNew)
		if errors.Is(err, domain.ErrAlreadyExists) {
			result, err = s.learnerVocab.Get(ctx, learnerID, vocabularyID)
			return err
		}
		if err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return domain.LearnerVocabulary{}, err
	}

	return result, nil
}

// EnsureForContent starts tracking every vocabulary item linked to a content
// item, at the default level. Items the learner already tracks keep their
// current level and notes. Returns the number of newly tracked items.
func (s *Service) EnsureForContent(ctx context.Context, learnerID, contentID uuid.UUID) (int, error) {
	var created int

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.content.GetByID(ctx, contentID)
		if err != nil {
			return fmt.Errorf("get content: %w", err)
		}

		if err := s.checkLearnsLanguage(ctx, learnerID, item.LanguageCode); err != nil {
			return err
		}

		vocabularyIDs, err := s.links.GetVocabularyIDs(ctx, contentID)
		if err != nil {
			return err
		}
		if len(vocabularyIDs) == 0 {
			return nil
		}

		created, err = s.learnerVocab.BulkCreate(ctx, learnerID, vocabularyIDs, domain.KnowledgeLevelNew)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "content vocabulary tracked",
		"learner_id", learnerID.String(),
		"content_id", contentID.String(),
		"created", created,
	)

	return created, nil
}
