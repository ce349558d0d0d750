// Package vocabulary implements the vocabulary registry: canonicalizing
// tokens into unique per-language vocabulary rows with get-or-create
// semantics that stay correct under concurrent inserts.
package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/domain"
	"github.com/vocadex/vocadex-backend/internal/tokenizer"
)

type vocabularyRepo interface {
	GetByKeys(ctx context.Context, langCode string, keys []domain.VocabularyKey) (map[domain.VocabularyKey]domain.Vocabulary, error)
	BulkInsert(ctx context.Context, items []domain.Vocabulary) (int, error)
}

// Service provides the vocabulary registry operations.
type Service struct {
	vocab vocabularyRepo
	log   *slog.Logger
}

// NewService creates a new vocabulary registry service.
func NewService(log *slog.Logger, vocab vocabularyRepo) *Service {
	return &Service{
		vocab: vocab,
		log:   log.With("service", "vocabulary"),
	}
}

// EnsureBatch resolves every token to its canonical vocabulary row, creating
// missing rows. The whole token set resolves in at most three round-trips:
// one read, one batched conflict-tolerant insert, one re-read for keys a
// concurrent writer won. Idempotent; never fails on a duplicate insert race.
func (s *Service) EnsureBatch(ctx context.Context, langCode string, tokens []tokenizer.Token) (map[domain.VocabularyKey]domain.Vocabulary, error) {
	if langCode == "" {
		return nil, domain.NewValidationError("language_code", "required")
	}

	tokens = tokenizer.Dedupe(tokens)
	if len(tokens) == 0 {
		return map[domain.VocabularyKey]domain.Vocabulary{}, nil
	}

	keys := make([]domain.VocabularyKey, len(tokens))
	for i, tok := range tokens {
		keys[i] = domain.VocabularyKey{TextNormalized: tok.Normalized, IsPhrase: tok.IsPhrase}
	}

	existing, err := s.vocab.GetByKeys(ctx, langCode, keys)
	if err != nil {
		return nil, fmt.Errorf("lookup vocabulary: %w", err)
	}

	var missing []domain.Vocabulary
	for i, tok := range tokens {
		if _, ok := existing[keys[i]]; ok {
			continue
		}
		missing = append(missing, newRow(langCode, tok))
	}

	if len(missing) == 0 {
		return existing, nil
	}

	inserted, err := s.vocab.BulkInsert(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("insert vocabulary: %w", err)
	}

	// Re-read the full key set: rows we lost to concurrent writers come back
	// with the winner's id.
	result, err := s.vocab.GetByKeys(ctx, langCode, keys)
	if err != nil {
		return nil, fmt.Errorf("re-read vocabulary: %w", err)
	}
	if len(result) != len(keys) {
		return nil, fmt.Errorf("vocabulary registry: %d of %d keys unresolved after insert", len(keys)-len(result), len(keys))
	}

	s.log.DebugContext(ctx, "vocabulary ensured",
		slog.String("language", langCode),
		slog.Int("requested", len(keys)),
		slog.Int("inserted", inserted),
	)

	return result, nil
}

// Ensure resolves a single token.
func (s *Service) Ensure(ctx context.Context, langCode string, tok tokenizer.Token) (domain.Vocabulary, error) {
	result, err := s.EnsureBatch(ctx, langCode, []tokenizer.Token{tok})
	if err != nil {
		return domain.Vocabulary{}, err
	}

	key := domain.VocabularyKey{TextNormalized: tok.Normalized, IsPhrase: tok.IsPhrase}
	v, ok := result[key]
	if !ok {
		return domain.Vocabulary{}, fmt.Errorf("vocabulary %q: %w", tok.Normalized, domain.ErrNotFound)
	}

	return v, nil
}

// EnsurePhrase registers a learner-curated multi-word expression. Phrases
// share the normalization rules of words but carry is_phrase = true, so they
// never collide with a single-word row of the same text.
func (s *Service) EnsurePhrase(ctx context.Context, langCode, text string) (domain.Vocabulary, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return domain.Vocabulary{}, domain.NewValidationError("text", "required")
	}

	return s.Ensure(ctx, langCode, tokenizer.Token{
		Text:       text,
		Normalized: normalized,
		IsPhrase:   true,
	})
}

func newRow(langCode string, tok tokenizer.Token) domain.Vocabulary {
	v := domain.Vocabulary{
		ID:             uuid.New(),
		LanguageCode:   langCode,
		Text:           tok.Text,
		TextNormalized: tok.Normalized,
		IsPhrase:       tok.IsPhrase,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
	if tok.Annotation != "" {
		annotation := tok.Annotation
		v.Annotation = &annotation
	}
	return v
}
