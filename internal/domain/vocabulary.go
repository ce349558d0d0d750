package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vocabulary is a canonical, deduplicated word or phrase scoped to one
// language. (LanguageCode, TextNormalized, IsPhrase) uniquely identifies a
// row; Text keeps the original casing as first seen. Rows are created lazily
// the first time a token is seen and never deleted — a word no longer used
// anywhere simply becomes unreferenced.
type Vocabulary struct {
	ID             uuid.UUID
	LanguageCode   string
	Text           string
	TextNormalized string
	IsPhrase       bool
	// Annotation is optional tokenizer-produced parsed text,
	// e.g. a katakana reading for Japanese.
	Annotation *string
	CreatedAt  time.Time
}

// VocabularyKey is the canonical identity of a vocabulary row within
// a language.
type VocabularyKey struct {
	TextNormalized string
	IsPhrase       bool
}

// Key returns the canonical key of the row.
func (v Vocabulary) Key() VocabularyKey {
	return VocabularyKey{TextNormalized: v.TextNormalized, IsPhrase: v.IsPhrase}
}

// KnownCount is a derived "known-by" counter for one vocabulary row,
// recomputed by query rather than maintained transactionally.
type KnownCount struct {
	VocabularyID uuid.UUID
	Learners     int
}
