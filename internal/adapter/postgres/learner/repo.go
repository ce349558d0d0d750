// Package learner implements reads over learners and their active languages.
package learner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
)

// Repo provides learner reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new learner repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// IsLearningLanguage reports whether the learner actively learns the given
// language. The knowledge service checks this inside its mutation
// transactions.
func (r *Repo) IsLearningLanguage(ctx context.Context, learnerID uuid.UUID, langCode string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM learner_languages
		   WHERE learner_id = $1 AND language_code = $2
		 )`,
		learnerID, langCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check learner language: %w", err)
	}

	return exists, nil
}
