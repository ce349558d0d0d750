// Package meaning implements batch reads over learner-authored vocabulary
// meanings. Meanings are written by the content collaborator; this core only
// reads them for overlays.
package meaning

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Repo provides meaning reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meaning repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByVocabularyIDs returns one learner's meanings for multiple vocabulary
// items in a single query, grouped by vocabulary id and ordered by position.
// Designed for overlay/DataLoader batch loading.
func (r *Repo) GetByVocabularyIDs(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID) (map[uuid.UUID][]domain.VocabularyMeaning, error) {
	if len(vocabularyIDs) == 0 {
		return map[uuid.UUID][]domain.VocabularyMeaning{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT id, vocabulary_id, learner_id, meaning, position, created_at
		 FROM vocabulary_meanings
		 WHERE learner_id = $1 AND vocabulary_id = ANY($2)
		 ORDER BY vocabulary_id, position`,
		learnerID, vocabularyIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("get meanings by vocabulary ids: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]domain.VocabularyMeaning, len(vocabularyIDs))
	for rows.Next() {
		var m domain.VocabularyMeaning
		if err := rows.Scan(&m.ID, &m.VocabularyID, &m.LearnerID, &m.Meaning, &m.Position, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meaning: %w", err)
		}
		result[m.VocabularyID] = append(result[m.VocabularyID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meanings: %w", err)
	}

	return result, nil
}
