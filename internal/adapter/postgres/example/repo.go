// Package example implements the language example repository using PostgreSQL.
// Queries are built with squirrel so the review filters (status, levels,
// paging) compose without string concatenation.
package example

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

const (
	table  = "language_examples"
	entity = "language_example"
)

var columns = []string{
	"id", "module_id", "level_id", "text_ru", "text_en", "transliteration",
	"context", "scenario", "tone", "tags", "notes", "review_status",
	"source_category", "created_at", "updated_at", "reviewed_at",
}

var (
	psql      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides example persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new example repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// List returns examples matching filter ordered by id ascending.
func (r *Repo) List(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, error) {
	q := psql.Select(columns...).From(table).OrderBy("id ASC")
	if filter.Status != nil {
		q = q.Where(sq.Eq{"review_status": string(*filter.Status)})
	}
	if len(filter.Levels) > 0 {
		q = q.Where(sq.Eq{"level_id": filter.Levels})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, nil)
	}
	defer rows.Close()

	examples := make([]domain.Example, 0)
	for rows.Next() {
		ex, err := scanExample(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, nil)
		}
		examples = append(examples, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, nil)
	}
	return examples, nil
}

// GetByID returns one example.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Example, error) {
	sql, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Example{}, fmt.Errorf("build get query: %w", err)
	}

	ex, err := scanExample(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Example{}, postgres.MapError(err, entity, id)
	}
	return ex, nil
}

// SetStatus records a review decision. created_at is left untouched;
// reviewed_at and updated_at are set to now.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Example, error) {
	q := psql.Update(table).
		Set("review_status", string(status)).
		Set("reviewed_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	return r.updateOne(ctx, q, id)
}

// UpdateNotes replaces the reviewer notes of one example.
func (r *Repo) UpdateNotes(ctx context.Context, id int64, notes *string) (domain.Example, error) {
	q := psql.Update(table).
		Set("notes", notes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	return r.updateOne(ctx, q, id)
}

// BatchSetStatus applies status to every existing id in one statement and
// returns the number of rows actually changed.
func (r *Repo) BatchSetStatus(ctx context.Context, ids []int64, status domain.ReviewStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := psql.Update(table).
		Set("review_status", string(status)).
		Set("reviewed_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build batch update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, nil)
	}
	return tag.RowsAffected(), nil
}

// Stats counts examples per review status in one grouped query.
func (r *Repo) Stats(ctx context.Context) (domain.ReviewStats, error) {
	sql, args, err := psql.Select("review_status", "COUNT(*)").
		From(table).
		GroupBy("review_status").
		ToSql()
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("build stats query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return domain.ReviewStats{}, postgres.MapError(err, entity, nil)
	}
	defer rows.Close()

	var stats domain.ReviewStats
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.ReviewStats{}, postgres.MapError(err, entity, nil)
		}
		switch domain.ReviewStatus(status) {
		case domain.ReviewStatusPending:
			stats.Pending = n
		case domain.ReviewStatusApproved:
			stats.Approved = n
		case domain.ReviewStatusRejected:
			stats.Rejected = n
		}
	}
	if err := rows.Err(); err != nil {
		return domain.ReviewStats{}, postgres.MapError(err, entity, nil)
	}

	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}

// Insert writes one example and returns its id. It joins the transaction
// (or savepoint) carried by ctx, if any.
func (r *Repo) Insert(ctx context.Context, ex domain.NewExample) (int64, error) {
	tags := ex.Tags
	if tags == nil {
		tags = []string{}
	}
	var tone *string
	if ex.Tone != nil {
		s := string(*ex.Tone)
		tone = &s
	}

	sql, args, err := psql.Insert(table).
		Columns("module_id", "level_id", "text_ru", "text_en", "context", "scenario",
			"tone", "tags", "notes", "review_status", "source_category").
		Values(ex.ModuleID, ex.LevelID, ex.TextRu, ex.TextEn, ex.Context, ex.Scenario,
			tone, tags, ex.Notes, string(ex.Status), ex.SourceCategory).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, entity, nil)
	}
	return id, nil
}

func (r *Repo) updateOne(ctx context.Context, q sq.UpdateBuilder, id int64) (domain.Example, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return domain.Example{}, fmt.Errorf("build update: %w", err)
	}

	ex, err := scanExample(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Example{}, postgres.MapError(err, entity, id)
	}
	return ex, nil
}

func scanExample(row pgx.Row) (domain.Example, error) {
	var (
		ex         domain.Example
		tone       *string
		status     string
		reviewedAt *time.Time
	)
	err := row.Scan(
		&ex.ID, &ex.ModuleID, &ex.LevelID, &ex.TextRu, &ex.TextEn, &ex.Transliteration,
		&ex.Context, &ex.Scenario, &tone, &ex.Tags, &ex.Notes, &status,
		&ex.SourceCategory, &ex.CreatedAt, &ex.UpdatedAt, &reviewedAt,
	)
	if err != nil {
		return domain.Example{}, err
	}

	if tone != nil {
		t := domain.Tone(*tone)
		ex.Tone = &t
	}
	ex.Status = domain.ReviewStatus(status)
	ex.ReviewedAt = reviewedAt
	return ex, nil
}
