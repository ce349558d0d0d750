// Package language implements the Language reference-data repository.
package language

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new language repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByCode returns a language by its code.
func (r *Repo) GetByCode(ctx context.Context, code string) (domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var lang domain.Language
	err := q.QueryRow(ctx,
		`SELECT code, name, is_supported FROM languages WHERE code = $1`,
		code,
	).Scan(&lang.Code, &lang.Name, &lang.IsSupported)
	if err != nil {
		return domain.Language{}, postgres.MapError(err, "language", uuid.Nil)
	}

	return lang, nil
}

// List returns all languages ordered by code.
func (r *Repo) List(ctx context.Context) ([]domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT code, name, is_supported FROM languages ORDER BY code`,
	)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	langs, err := scanLanguages(rows)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	return langs, nil
}

// Upsert inserts or updates languages in one batch. On conflict (code), name
// and is_supported are refreshed. Returns the number of affected rows.
func (r *Repo) Upsert(ctx context.Context, langs []domain.Language) (int, error) {
	if len(langs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, l := range langs {
		batch.Queue(
			`INSERT INTO languages (code, name, is_supported)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (code) DO UPDATE
			 SET name = EXCLUDED.name,
			     is_supported = EXCLUDED.is_supported,
			     updated_at = now()`,
			l.Code, l.Name, l.IsSupported,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range langs {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("upsert language: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}

func scanLanguages(rows pgx.Rows) ([]domain.Language, error) {
	var langs []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.Code, &l.Name, &l.IsSupported); err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if langs == nil {
		langs = []domain.Language{}
	}

	return langs, nil
}
