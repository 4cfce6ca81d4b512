// Package transformation stores informal/formal language pairs.
package transformation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

const table = "language_transformations"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides transformation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new transformation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Insert writes one transformation and returns its id.
func (r *Repo) Insert(ctx context.Context, t domain.NewTransformation) (int64, error) {
	sql, args, err := psql.Insert(table).
		Columns("informal_text", "informal_level", "formal_text", "formal_level",
			"explanation_ru", "explanation_en", "category", "usage_notes").
		Values(t.InformalText, t.InformalLevel, t.FormalText, t.FormalLevel,
			t.ExplanationRu, t.ExplanationEn, t.Category, t.UsageNotes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "language_transformation", nil)
	}
	return id, nil
}

// Count returns the number of stored transformations.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "language_transformation", nil)
	}
	return n, nil
}
