// Package content implements the content-item repository. Content bodies are
// authored by the content collaborator; this core reads them for reconcile
// and reindex and reads per-learner flags for overlays.
package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Repo provides content-item reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns one content item (without its body).
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.ContentItem
	err := q.QueryRow(ctx,
		`SELECT id, kind, language_code, title, created_at, updated_at
		 FROM content_items
		 WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Kind, &c.LanguageCode, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, "content_item", id)
	}

	return c, nil
}

// ContentWithBody pairs a content item with its raw body text.
type ContentWithBody struct {
	domain.ContentItem
	Body string
}

// ListWithBodies returns content items with bodies, optionally restricted to
// one language. Used by the reindex pipeline; ordered by created_at so runs
// are repeatable.
func (r *Repo) ListWithBodies(ctx context.Context, langCode *string) ([]ContentWithBody, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `SELECT id, kind, language_code, title, body, created_at, updated_at
	        FROM content_items`
	args := []any{}
	if langCode != nil {
		sql += ` WHERE language_code = $1`
		args = append(args, *langCode)
	}
	sql += ` ORDER BY created_at, id`

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list content with bodies: %w", err)
	}
	defer rows.Close()

	var items []ContentWithBody
	for rows.Next() {
		var c ContentWithBody
		if err := rows.Scan(&c.ID, &c.Kind, &c.LanguageCode, &c.Title, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content: %w", err)
	}

	if items == nil {
		items = []ContentWithBody{}
	}

	return items, nil
}

// GetFlagsByContentIDs returns per-learner flags for multiple content items in
// one query, keyed by content id. Items the learner never touched are absent.
func (r *Repo) GetFlagsByContentIDs(ctx context.Context, learnerID uuid.UUID, contentIDs []uuid.UUID) (map[uuid.UUID]domain.LearnerContentFlags, error) {
	if len(contentIDs) == 0 {
		return map[uuid.UUID]domain.LearnerContentFlags{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT content_id, bookmarked, last_viewed_at
		 FROM learner_content
		 WHERE learner_id = $1 AND content_id = ANY($2)`,
		learnerID, contentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("get learner content flags: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.LearnerContentFlags, len(contentIDs))
	for rows.Next() {
		var f domain.LearnerContentFlags
		if err := rows.Scan(&f.ContentID, &f.Bookmarked, &f.LastViewedAt); err != nil {
			return nil, fmt.Errorf("scan learner content flags: %w", err)
		}
		result[f.ContentID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learner content flags: %w", err)
	}

	return result, nil
}
