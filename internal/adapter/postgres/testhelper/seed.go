package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Seed helpers insert minimal valid rows for adapter tests. They fail the
// test on error and return the persisted value.

// Learner is the seeded shape returned by SeedLearner.
type Learner struct {
	ID    uuid.UUID
	Email string
}

// SeedLearner inserts a learner with a unique email.
func SeedLearner(t *testing.T, pool *pgxpool.Pool) Learner {
	t.Helper()

	id := uuid.New()
	email := fmt.Sprintf("learner-%s@example.com", id.String()[:8])

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learners (id, email, name, created_at) VALUES ($1, $2, $3, now())`,
		id, email, "Test Learner",
	)
	if err != nil {
		t.Fatalf("seed learner: %v", err)
	}

	return Learner{ID: id, Email: email}
}

// SeedLanguage upserts a language row.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, code string, supported bool) domain.Language {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO languages (code, name, is_supported)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (code) DO UPDATE SET is_supported = EXCLUDED.is_supported`,
		code, "Language "+code, supported,
	)
	if err != nil {
		t.Fatalf("seed language %s: %v", code, err)
	}

	return domain.Language{Code: code, Name: "Language " + code, IsSupported: supported}
}

// SeedLearnerLanguage marks a language as actively learned by the learner.
func SeedLearnerLanguage(t *testing.T, pool *pgxpool.Pool, learnerID uuid.UUID, code string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learner_languages (learner_id, language_code)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		learnerID, code,
	)
	if err != nil {
		t.Fatalf("seed learner language %s: %v", code, err)
	}
}

// SeedVocabulary inserts one non-phrase vocabulary row.
func SeedVocabulary(t *testing.T, pool *pgxpool.Pool, langCode, text string) domain.Vocabulary {
	t.Helper()

	v := domain.Vocabulary{
		ID:             uuid.New(),
		LanguageCode:   langCode,
		Text:           text,
		TextNormalized: domain.NormalizeText(text),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary (id, language_code, text, text_normalized, is_phrase, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.LanguageCode, v.Text, v.TextNormalized, v.IsPhrase, v.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed vocabulary %q: %v", text, err)
	}

	return v
}

// SeedContentItem inserts a content item of kind TEXT.
func SeedContentItem(t *testing.T, pool *pgxpool.Pool, langCode, title string) domain.ContentItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.ContentItem{
		ID:           uuid.New(),
		Kind:         domain.ContentKindText,
		LanguageCode: langCode,
		Title:        title,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO content_items (id, kind, language_code, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Kind, c.LanguageCode, c.Title, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("seed content item %q: %v", title, err)
	}

	return c
}

// SeedLink inserts one content-vocabulary link.
func SeedLink(t *testing.T, pool *pgxpool.Pool, contentID, vocabularyID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO content_vocabulary_links (content_id, vocabulary_id) VALUES ($1, $2)`,
		contentID, vocabularyID,
	)
	if err != nil {
		t.Fatalf("seed link: %v", err)
	}
}

// SeedLearnerVocabulary inserts one knowledge-graph row at the given level.
func SeedLearnerVocabulary(t *testing.T, pool *pgxpool.Pool, learnerID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) domain.LearnerVocabulary {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lv := domain.LearnerVocabulary{
		ID:           uuid.New(),
		LearnerID:    learnerID,
		VocabularyID: vocabularyID,
		Level:        level,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learner_vocabulary (id, learner_id, vocabulary_id, level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		lv.ID, lv.LearnerID, lv.VocabularyID, lv.Level, lv.CreatedAt, lv.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("seed learner vocabulary: %v", err)
	}

	return lv
}

// SeedMeaning inserts one learner-authored meaning.
func SeedMeaning(t *testing.T, pool *pgxpool.Pool, vocabularyID, learnerID uuid.UUID, meaning string, position int) domain.VocabularyMeaning {
	t.Helper()

	m := domain.VocabularyMeaning{
		ID:           uuid.New(),
		VocabularyID: vocabularyID,
		LearnerID:    learnerID,
		Meaning:      meaning,
		Position:     position,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary_meanings (id, vocabulary_id, learner_id, meaning, position, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.VocabularyID, m.LearnerID, m.Meaning, m.Position, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed meaning: %v", err)
	}

	return m
}

// SeedLearnerContent inserts learner flags for a content item.
func SeedLearnerContent(t *testing.T, pool *pgxpool.Pool, learnerID, contentID uuid.UUID, bookmarked bool, lastViewedAt *time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learner_content (learner_id, content_id, bookmarked, last_viewed_at)
		 VALUES ($1, $2, $3, $4)`,
		learnerID, contentID, bookmarked, lastViewedAt,
	)
	if err != nil {
		t.Fatalf("seed learner content: %v", err)
	}
}
