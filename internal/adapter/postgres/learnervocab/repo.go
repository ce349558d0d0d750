// Package learnervocab implements the learner×vocabulary knowledge-graph
// repository. Static queries are raw SQL; the dynamic List filter is built
// with squirrel.
package learnervocab

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vocadex/vocadex-backend/internal/adapter/postgres"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

// Repo provides knowledge-graph persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new knowledge-graph repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const learnerVocabColumns = `id, learner_id, vocabulary_id, level, notes, created_at, updated_at`

// Get returns the row for (learner, vocabulary), or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, learnerID, vocabularyID uuid.UUID) (domain.LearnerVocabulary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+learnerVocabColumns+`
		 FROM learner_vocabulary
		 WHERE learner_id = $1 AND vocabulary_id = $2`,
		learnerID, vocabularyID,
	)

	lv, err := scanRow(row)
	if err != nil {
		return domain.LearnerVocabulary{}, postgres.MapError(err, "learner_vocabulary", vocabularyID)
	}

	return lv, nil
}

// Create inserts a new row. A concurrent duplicate surfaces as
// domain.ErrAlreadyExists via the (learner_id, vocabulary_id) constraint;
// callers recover by re-reading.
func (r *Repo) Create(ctx context.Context, learnerID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	row := q.QueryRow(ctx,
		`INSERT INTO learner_vocabulary (id, learner_id, vocabulary_id, level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 RETURNING `+learnerVocabColumns,
		id, learnerID, vocabularyID, level, now,
	)

	lv, err := scanRow(row)
	if err != nil {
		return domain.LearnerVocabulary{}, postgres.MapError(err, "learner_vocabulary", id)
	}

	return lv, nil
}

// UpdateLevel sets the level on an existing row. Returns domain.ErrNotFound
// if the learner has no row for the vocabulary — partial updates never create
// rows.
func (r *Repo) UpdateLevel(ctx context.Context, learnerID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE learner_vocabulary
		 SET level = $3, updated_at = now()
		 WHERE learner_id = $1 AND vocabulary_id = $2
		 RETURNING `+learnerVocabColumns,
		learnerID, vocabularyID, level,
	)

	lv, err := scanRow(row)
	if err != nil {
		return domain.LearnerVocabulary{}, postgres.MapError(err, "learner_vocabulary", vocabularyID)
	}

	return lv, nil
}

// UpdateNotes sets the notes on an existing row; nil clears them. Returns
// domain.ErrNotFound if the row is absent.
func (r *Repo) UpdateNotes(ctx context.Context, learnerID, vocabularyID uuid.UUID, notes *string) (domain.LearnerVocabulary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE learner_vocabulary
		 SET notes = $3, updated_at = now()
		 WHERE learner_id = $1 AND vocabulary_id = $2
		 RETURNING `+learnerVocabColumns,
		learnerID, vocabularyID, notes,
	)

	lv, err := scanRow(row)
	if err != nil {
		return domain.LearnerVocabulary{}, postgres.MapError(err, "learner_vocabulary", vocabularyID)
	}

	return lv, nil
}

// GetByVocabularyIDs returns the learner's rows for the given vocabulary ids,
// keyed by vocabulary id. Untracked vocabulary is absent from the result.
func (r *Repo) GetByVocabularyIDs(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID) (map[uuid.UUID]domain.LearnerVocabulary, error) {
	if len(vocabularyIDs) == 0 {
		return map[uuid.UUID]domain.LearnerVocabulary{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT `+learnerVocabColumns+`
		 FROM learner_vocabulary
		 WHERE learner_id = $1 AND vocabulary_id = ANY($2)`,
		learnerID, vocabularyIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("get learner vocabulary by ids: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.LearnerVocabulary, len(vocabularyIDs))
	for rows.Next() {
		lv, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan learner vocabulary: %w", err)
		}
		result[lv.VocabularyID] = lv
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learner vocabulary: %w", err)
	}

	return result, nil
}

// BulkCreate inserts rows for many vocabulary ids at the default level in one
// batch. Pairs that already exist are skipped via ON CONFLICT DO NOTHING,
// so concurrent "start learning" calls converge on one row per pair.
// Returns the number of actually inserted rows.
func (r *Repo) BulkCreate(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID, level domain.KnowledgeLevel) (int, error) {
	if len(vocabularyIDs) == 0 {
		return 0, nil
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	batch := &pgx.Batch{}
	for _, vid := range vocabularyIDs {
		batch.Queue(
			`INSERT INTO learner_vocabulary (id, learner_id, vocabulary_id, level, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $5)
			 ON CONFLICT ON CONSTRAINT uq_learner_vocabulary DO NOTHING`,
			uuid.New(), learnerID, vid, level, now,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range vocabularyIDs {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("bulk create learner vocabulary: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ListItem is a knowledge-graph row joined with its vocabulary for list
// views.
type ListItem struct {
	domain.LearnerVocabulary
	Vocabulary domain.Vocabulary
}

// List returns the learner's rows matching the filter, joined with
// vocabulary for display and search. See domain.KnowledgeFilter for axis
// semantics.
func (r *Repo) List(ctx context.Context, learnerID uuid.UUID, filter domain.KnowledgeFilter) ([]ListItem, error) {
	filter = normalizeFilter(filter)

	builder := sq.Select(
		"lv.id", "lv.learner_id", "lv.vocabulary_id", "lv.level", "lv.notes",
		"lv.created_at", "lv.updated_at",
		"v.id", "v.language_code", "v.text", "v.text_normalized", "v.is_phrase",
		"v.annotation", "v.created_at",
	).
		From("learner_vocabulary lv").
		Join("vocabulary v ON v.id = lv.vocabulary_id").
		Where(sq.Eq{"lv.learner_id": learnerID}).
		Where(sq.Eq{"lv.level": levelSet(filter.Levels)}).
		PlaceholderFormat(sq.Dollar)

	if filter.LanguageCode != nil {
		builder = builder.Where(sq.Eq{"v.language_code": *filter.LanguageCode})
	}
	if filter.Search != nil && *filter.Search != "" {
		builder = builder.Where(sq.ILike{"v.text_normalized": "%" + domain.NormalizeText(*filter.Search) + "%"})
	}

	builder = builder.
		OrderBy(sortColumn(filter.SortBy)+" "+filter.SortOrder, "lv.id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list learner vocabulary: %w", err)
	}
	defer rows.Close()

	var items []ListItem
	for rows.Next() {
		var it ListItem
		if err := rows.Scan(
			&it.ID, &it.LearnerID, &it.VocabularyID, &it.Level, &it.Notes,
			&it.CreatedAt, &it.UpdatedAt,
			&it.Vocabulary.ID, &it.Vocabulary.LanguageCode, &it.Vocabulary.Text,
			&it.Vocabulary.TextNormalized, &it.Vocabulary.IsPhrase,
			&it.Vocabulary.Annotation, &it.Vocabulary.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list items: %w", err)
	}

	if items == nil {
		items = []ListItem{}
	}

	return items, nil
}

// CountKnownByVocabularyIDs recomputes the derived "known-by" counter: how
// many learners track each vocabulary at KNOWN. Vocabulary nobody knows is
// absent from the result.
func (r *Repo) CountKnownByVocabularyIDs(ctx context.Context, vocabularyIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(vocabularyIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT vocabulary_id, count(*)
		 FROM learner_vocabulary
		 WHERE vocabulary_id = ANY($1) AND level = $2
		 GROUP BY vocabulary_id`,
		vocabularyIDs, domain.KnowledgeLevelKnown,
	)
	if err != nil {
		return nil, fmt.Errorf("count known: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]int, len(vocabularyIDs))
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan known count: %w", err)
		}
		result[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate known counts: %w", err)
	}

	return result, nil
}

// scanRow scans one learner_vocabulary row from either pgx.Row or pgx.Rows.
func scanRow(row pgx.Row) (domain.LearnerVocabulary, error) {
	var lv domain.LearnerVocabulary
	err := row.Scan(&lv.ID, &lv.LearnerID, &lv.VocabularyID, &lv.Level, &lv.Notes, &lv.CreatedAt, &lv.UpdatedAt)
	if err != nil {
		return domain.LearnerVocabulary{}, err
	}
	return lv, nil
}
