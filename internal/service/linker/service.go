// Package linker keeps the content-vocabulary link set in sync with the
// current text of a content item.
package linker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/domain"
	"github.com/vocadex/vocadex-backend/internal/tokenizer"
)

type contentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
}

type linkRepo interface {
	GetVocabularyIDs(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error)
	BatchInsert(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error)
	BatchDelete(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error)
}

type vocabularyEnsurer interface {
	EnsureBatch(ctx context.Context, langCode string, tokens []tokenizer.Token) (map[domain.VocabularyKey]domain.Vocabulary, error)
}

type tokenizerResolver interface {
	Resolve(langCode string) (tokenizer.Tokenizer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reconciles content texts against the vocabulary link table.
type Service struct {
	content    contentRepo
	links      linkRepo
	vocabulary vocabularyEnsurer
	tokenizers tokenizerResolver
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new linker service.
func NewService(
	log *slog.Logger,
	content contentRepo,
	links linkRepo,
	vocabulary vocabularyEnsurer,
	tokenizers tokenizerResolver,
	tx txManager,
) *Service {
	return &Service{
		content:    content,
		links:      links,
		vocabulary: vocabulary,
		tokenizers: tokenizers,
		tx:         tx,
		log:        log.With("service", "linker"),
	}
}

// ReconcileResult describes the delta a reconcile applied.
type ReconcileResult struct {
	Added   []uuid.UUID
	Removed []uuid.UUID
}

// Reconcile recomputes the vocabulary of a content item from rawText and
// applies the minimal delta to the link table: links for vocabulary no longer
// present are removed, links for new vocabulary are added, links that are
// still valid are left untouched. The whole operation runs in one
// transaction, so readers never observe a half-updated link set. Reconciling
// the same text twice is a no-op.
func (s *Service) Reconcile(ctx context.Context, contentID uuid.UUID, rawText string) (ReconcileResult, error) {
	var result ReconcileResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.content.GetByID(ctx, contentID)
		if err != nil {
			return err
		}

		tok, err := s.tokenizers.Resolve(item.LanguageCode)
		if err != nil {
			return err
		}

		tokens := tokenizer.Dedupe(tok.Segment(rawText))

		vocab, err := s.vocabulary.EnsureBatch(ctx, item.LanguageCode, tokens)
		if err != nil {
			return err
		}

		target := make(map[uuid.UUID]struct{}, len(vocab))
		for _, v := range vocab {
			target[v.ID] = struct{}{}
		}

		currentIDs, err := s.links.GetVocabularyIDs(ctx, contentID)
		if err != nil {
			return err
		}
		current := make(map[uuid.UUID]struct{}, len(currentIDs))
		for _, id := range currentIDs {
			current[id] = struct{}{}
		}

		var added, removed []uuid.UUID
		for id := range target {
			if _, ok := current[id]; !ok {
				added = append(added, id)
			}
		}
		for _, id := range currentIDs {
			if _, ok := target[id]; !ok {
				removed = append(removed, id)
			}
		}

		if _, err := s.links.BatchDelete(ctx, contentID, removed); err != nil {
			return err
		}
		if _, err := s.links.BatchInsert(ctx, contentID, added); err != nil {
			return err
		}

		result = ReconcileResult{Added: added, Removed: removed}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	s.log.InfoContext(ctx, "content reconciled",
		slog.String("content_id", contentID.String()),
		slog.Int("added", len(result.Added)),
		slog.Int("removed", len(result.Removed)),
	)

	return result, nil
}
