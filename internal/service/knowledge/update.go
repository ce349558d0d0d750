package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// SetLevel moves the learner's knowledge of a vocabulary item to the given
// level. Any valid level may be set directly; there is no required order of
// transitions. Returns domain.ErrNotFound when the item is untracked —
// tracking is a separate step (Ensure), so callers can tell "never seen"
// apart from "tracked at the default level".
func (s *Service) SetLevel(ctx context.Context, learnerID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error) {
	if !level.IsValid() {
		return domain.LearnerVocabulary{}, domain.NewValidationError("level", fmt.Sprintf("unknown knowledge level: %s", level))
	}

	var result domain.LearnerVocabulary

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		vocab, err := s.vocabulary.GetByID(ctx, vocabularyID)
		if err != nil {
			return fmt.Errorf("get vocabulary: %w", err)
		}
		if err := s.checkLearnsLanguage(ctx, learnerID, vocab.LanguageCode); err != nil {
			return err
		}

		result, err = s.learnerVocab.UpdateLevel(ctx, learnerID, vocabularyID, level)
		return err
	})
	if err != nil {
		return domain.LearnerVocabulary{}, err
	}

	s.log.DebugContext(ctx, "knowledge level set",
		"learner_id", learnerID.String(),
		"vocabulary_id", vocabularyID.String(),
		"level", level.String(),
	)

	return result, nil
}

// SetNotes replaces the learner's notes on a tracked vocabulary item.
// A blank string clears the notes. Returns domain.ErrNotFound when the item
// is untracked.
func (s *Service) SetNotes(ctx context.Context, learnerID, vocabularyID uuid.UUID, notes string) (domain.LearnerVocabulary, error) {
	var result domain.LearnerVocabulary

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		vocab, err := s.vocabulary.GetByID(ctx, vocabularyID)
		if err != nil {
			return fmt.Errorf("get vocabulary: %w", err)
		}
		if err := s.checkLearnsLanguage(ctx, learnerID, vocab.LanguageCode); err != nil {
			return err
		}

		result, err = s.learnerVocab.UpdateNotes(ctx, learnerID, vocabularyID, trimOrNil(notes))
		return err
	})
	if err != nil {
		return domain.LearnerVocabulary{}, err
	}

	return result, nil
}

func trimOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
