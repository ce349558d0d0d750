// Package vocabulary implements the canonical vocabulary repository.
// The unique constraint on (language_code, text_normalized, is_phrase) is the
// authority on identity; inserts go through ON CONFLICT DO NOTHING so that
// concurrent writers racing to introduce the same word never fail and never
// duplicate a row.
package vocabulary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByKeysSQL = `
SELECT id, language_code, text, text_normalized, is_phrase, annotation, created_at
FROM vocabulary
WHERE language_code = $1
  AND (text_normalized, is_phrase) IN (SELECT unnest($2::text[]), unnest($3::boolean[]))`

// GetByKeys returns existing rows for the given canonical keys within one
// language, keyed by (text_normalized, is_phrase). Missing keys are simply
// absent from the result.
func (r *Repo) GetByKeys(ctx context.Context, langCode string, keys []domain.VocabularyKey) (map[domain.VocabularyKey]domain.Vocabulary, error) {
	if len(keys) == 0 {
		return map[domain.VocabularyKey]domain.Vocabulary{}, nil
	}

	texts := make([]string, len(keys))
	phrases := make([]bool, len(keys))
	for i, k := range keys {
		texts[i] = k.TextNormalized
		phrases[i] = k.IsPhrase
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, getByKeysSQL, langCode, texts, phrases)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary by keys: %w", err)
	}
	defer rows.Close()

	result := make(map[domain.VocabularyKey]domain.Vocabulary, len(keys))
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, fmt.Errorf("get vocabulary by keys: %w", err)
		}
		result[v.Key()] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get vocabulary by keys: %w", err)
	}

	return result, nil
}

// BulkInsert inserts vocabulary rows using pgx.Batch. Rows whose canonical key
// already exists are skipped via ON CONFLICT DO NOTHING; the concurrent
// winner's row is picked up by the caller's re-read. Returns the number of
// actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, items []domain.Vocabulary) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, v := range items {
		batch.Queue(
			`INSERT INTO vocabulary (id, language_code, text, text_normalized, is_phrase, annotation, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT ON CONSTRAINT uq_vocabulary_key DO NOTHING`,
			v.ID, v.LanguageCode, v.Text, v.TextNormalized, v.IsPhrase, v.Annotation, v.CreatedAt,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range items {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("bulk insert vocabulary: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// GetByIDs returns vocabulary rows for the given ids, keyed by id.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Vocabulary, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]domain.Vocabulary{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT id, language_code, text, text_normalized, is_phrase, annotation, created_at
		 FROM vocabulary
		 WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary by ids: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.Vocabulary, len(ids))
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, fmt.Errorf("get vocabulary by ids: %w", err)
		}
		result[v.ID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get vocabulary by ids: %w", err)
	}

	return result, nil
}

// GetByID returns one vocabulary row.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vocabulary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT id, language_code, text, text_normalized, is_phrase, annotation, created_at
		 FROM vocabulary
		 WHERE id = $1`,
		id,
	)

	var v domain.Vocabulary
	if err := row.Scan(&v.ID, &v.LanguageCode, &v.Text, &v.TextNormalized, &v.IsPhrase, &v.Annotation, &v.CreatedAt); err != nil {
		return domain.Vocabulary{}, postgres.MapError(err, "vocabulary", id)
	}

	return v, nil
}

// NewRow builds an insert-ready row from a token.
func NewRow(langCode, text, normalized string, isPhrase bool, annotation string) domain.Vocabulary {
	v := domain.Vocabulary{
		ID:             uuid.New(),
		LanguageCode:   langCode,
		Text:           text,
		TextNormalized: normalized,
		IsPhrase:       isPhrase,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
	if annotation != "" {
		v.Annotation = &annotation
	}
	return v
}

func scanVocabulary(rows pgx.Rows) (domain.Vocabulary, error) {
	var v domain.Vocabulary
	if err := rows.Scan(&v.ID, &v.LanguageCode, &v.Text, &v.TextNormalized, &v.IsPhrase, &v.Annotation, &v.CreatedAt); err != nil {
		return domain.Vocabulary{}, err
	}
	return v, nil
}
