package generator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

type exampleStore interface {
	Insert(ctx context.Context, ex domain.NewExample) (int64, error)
}

type transformationStore interface {
	Insert(ctx context.Context, t domain.NewTransformation) (int64, error)
}

// Persister writes the rows of one batch in a single transaction. Each row
// runs in its own savepoint, so a rejected row does not undo the others.
type Persister struct {
	tx              txManager
	examples        exampleStore
	transformations transformationStore
	log             *slog.Logger
}

// NewPersister creates a Persister.
func NewPersister(tx txManager, examples exampleStore, transformations transformationStore, log *slog.Logger) *Persister {
	return &Persister{
		tx:              tx,
		examples:        examples,
		transformations: transformations,
		log:             log.With("component", "persister"),
	}
}

// Persist inserts rows and returns how many were stored together with the
// rows the store refused. An error wrapping domain.ErrStoreUnavailable means
// nothing from this batch was committed and the job should stop.
func (p *Persister) Persist(ctx context.Context, cat catalog.Category, rows Rows) (int, []RowError, error) {
	if rows.Len() == 0 {
		return 0, nil, nil
	}

	var (
		stored   int
		rejected []RowError
	)

	insert := func(ctx context.Context, idx int, fn func(ctx context.Context) error) error {
		err := p.tx.RunInSavepoint(ctx, fn)
		switch {
		case err == nil:
			stored++
			return nil
		case errors.Is(err, domain.ErrStoreUnavailable):
			return err
		default:
			p.log.WarnContext(ctx, "row rejected by store",
				slog.String("category", cat.Name),
				slog.Int("index", idx),
				slog.String("error", err.Error()),
			)
			rejected = append(rejected, RowError{Index: idx, Err: err})
			return nil
		}
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, row := range rows.Transformations {
			if err := insert(ctx, row.Index, func(ctx context.Context) error {
				_, err := p.transformations.Insert(ctx, row.Transformation)
				return err
			}); err != nil {
				return err
			}
		}
		for _, row := range rows.Examples {
			if err := insert(ctx, row.Index, func(ctx context.Context) error {
				_, err := p.examples.Insert(ctx, row.Example)
				return err
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return stored, rejected, nil
}
