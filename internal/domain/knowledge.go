package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearnerVocabulary is one learner's knowledge state for one vocabulary item.
// At most one row exists per (LearnerID, VocabularyID); the default level on
// first creation is NEW. Rows are never deleted — IGNORED is the terminal
// deactivation state.
type LearnerVocabulary struct {
	ID           uuid.UUID
	LearnerID    uuid.UUID
	VocabularyID uuid.UUID
	Level        KnowledgeLevel
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VocabularyMeaning is a learner-authored meaning attached to a vocabulary
// item. Authored and ordered by the owning learner; this core only batch-reads
// meanings for overlays.
type VocabularyMeaning struct {
	ID           uuid.UUID
	VocabularyID uuid.UUID
	LearnerID    uuid.UUID
	Meaning      string
	Position     int
	CreatedAt    time.Time
}

// LearnerVocabularyWithMeanings is a knowledge-graph row annotated with the
// learner's meanings for its vocabulary.
type LearnerVocabularyWithMeanings struct {
	LearnerVocabulary
	Meanings []VocabularyMeaning
}
