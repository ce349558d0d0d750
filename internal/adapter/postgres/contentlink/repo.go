// Package contentlink implements the content↔vocabulary link repository.
// Links are set-membership rows: one row per (content, vocabulary) pair no
// matter how often the word occurs in the text.
package contentlink

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Repo provides link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetVocabularyIDs returns the current link set for one content item.
func (r *Repo) GetVocabularyIDs(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT vocabulary_id FROM content_vocabulary_links WHERE content_id = $1`,
		contentID,
	)
	if err != nil {
		return nil, fmt.Errorf("get link set: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate links: %w", err)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// BatchInsert adds links for the given vocabulary ids. Existing pairs are
// skipped via ON CONFLICT DO NOTHING — re-linking is not an error.
func (r *Repo) BatchInsert(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error) {
	if len(vocabularyIDs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, vid := range vocabularyIDs {
		batch.Queue(
			`INSERT INTO content_vocabulary_links (content_id, vocabulary_id)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			contentID, vid,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range vocabularyIDs {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert link: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// BatchDelete removes links for the given vocabulary ids. Missing pairs are
// not an error.
func (r *Repo) BatchDelete(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error) {
	if len(vocabularyIDs) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx,
		`DELETE FROM content_vocabulary_links
		 WHERE content_id = $1 AND vocabulary_id = ANY($2)`,
		contentID, vocabularyIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("delete links: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// CountByContentIDs returns link-set sizes for multiple content items.
// Content with zero links is absent from the result.
func (r *Repo) CountByContentIDs(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(contentIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT content_id, count(*)
		 FROM content_vocabulary_links
		 WHERE content_id = ANY($1)
		 GROUP BY content_id`,
		contentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("count links: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]int, len(contentIDs))
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan link count: %w", err)
		}
		result[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate link counts: %w", err)
	}

	return result, nil
}

// LevelCount is one histogram bucket for one content item. Level is nil for
// vocabulary the learner has no knowledge-graph row for.
type LevelCount struct {
	ContentID uuid.UUID
	Level     *domain.KnowledgeLevel
	Count     int
}

const levelCountsSQL = `
SELECT l.content_id, lv.level, count(*) AS cnt
FROM content_vocabulary_links l
LEFT JOIN learner_vocabulary lv
  ON lv.vocabulary_id = l.vocabulary_id AND lv.learner_id = $2
WHERE l.content_id = ANY($1)
GROUP BY l.content_id, lv.level`

// LevelCounts returns, in a single query, the per-level counts over each
// content item's link set for one learner. LEFT JOIN semantics: linked
// vocabulary without a knowledge-graph row surfaces with a NULL level.
// Content items with zero links produce no rows; the caller fills zero
// histograms.
func (r *Repo) LevelCounts(ctx context.Context, contentIDs []uuid.UUID, learnerID uuid.UUID) ([]LevelCount, error) {
	if len(contentIDs) == 0 {
		return []LevelCount{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, levelCountsSQL, contentIDs, learnerID)
	if err != nil {
		return nil, fmt.Errorf("level counts: %w", err)
	}
	defer rows.Close()

	var counts []LevelCount
	for rows.Next() {
		var lc LevelCount
		var level *string
		if err := rows.Scan(&lc.ContentID, &level, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan level count: %w", err)
		}
		if level != nil {
			l := domain.KnowledgeLevel(*level)
			lc.Level = &l
		}
		counts = append(counts, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate level counts: %w", err)
	}

	if counts == nil {
		counts = []LevelCount{}
	}

	return counts, nil
}
