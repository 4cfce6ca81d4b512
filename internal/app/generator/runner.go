// Package generator runs lesson generation jobs: for each catalog category it
// requests batches from the model, maps the JSON into rows and stores them.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
	"github.com/heartmarshall/prize2pride-backend/internal/provider"
)

// Generator produces one JSON object for a system instruction and prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (json.RawMessage, error)
}

type batchStore interface {
	Persist(ctx context.Context, cat catalog.Category, rows Rows) (int, []RowError, error)
}

// Config controls pacing and retries of a job.
type Config struct {
	SystemInstruction string
	// BatchDelay is waited between consecutive batches of a category.
	BatchDelay time.Duration
	// MaxRetries is the number of extra attempts for a retryable failure.
	MaxRetries int
	RetryDelay time.Duration
	// DryRun generates and maps but writes nothing.
	DryRun bool
}

// JobResult summarizes one category run.
type JobResult struct {
	Category  string
	Batches   int
	Succeeded int
	Failed    int
	Items     int
	Persisted int
	RowErrors int
}

// Summary aggregates the results of RunAll.
type Summary struct {
	Jobs           []JobResult
	TotalItems     int
	TotalPersisted int
	FailedBatches  int
}

// Runner executes generation jobs one batch at a time.
type Runner struct {
	gen   Generator
	store batchStore
	cfg   Config
	log   *slog.Logger
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a Runner. store may be nil when cfg.DryRun is set.
func NewRunner(gen Generator, store batchStore, cfg Config, log *slog.Logger) *Runner {
	return &Runner{
		gen:   gen,
		store: store,
		cfg:   cfg,
		log:   log.With("component", "generator"),
		sleep: sleepCtx,
	}
}

// RunAll runs every category in order. It stops early only when the store
// becomes unavailable or ctx is done; the partial summary is returned with
// the error.
func (r *Runner) RunAll(ctx context.Context, categories []catalog.Category) (Summary, error) {
	var sum Summary
	for _, cat := range categories {
		res, err := r.Run(ctx, cat)
		sum.Jobs = append(sum.Jobs, res)
		sum.TotalItems += res.Items
		sum.TotalPersisted += res.Persisted
		sum.FailedBatches += res.Failed
		if err != nil {
			return sum, err
		}
	}

	r.log.InfoContext(ctx, "generation finished",
		slog.Int("categories", len(sum.Jobs)),
		slog.Int("items", sum.TotalItems),
		slog.Int("persisted", sum.TotalPersisted),
		slog.Int("failed_batches", sum.FailedBatches),
	)
	return sum, nil
}

// Run attempts every batch of cat. A failed batch is logged and counted; the
// job moves on to the next one after the usual delay.
func (r *Runner) Run(ctx context.Context, cat catalog.Category) (JobResult, error) {
	res := JobResult{Category: cat.Name}

	n, err := cat.Batches()
	if err != nil {
		return res, err
	}
	res.Batches = n
	prompt := cat.Render()

	r.log.InfoContext(ctx, "category started",
		slog.String("category", cat.Name),
		slog.Int("batches", n),
		slog.Int("batch_size", cat.BatchSize),
		slog.Bool("dry_run", r.cfg.DryRun),
	)

	for i := 0; i < n; i++ {
		if i > 0 {
			if err := r.sleep(ctx, r.cfg.BatchDelay); err != nil {
				return res, err
			}
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		batch := slog.Group("batch", slog.Int("index", i+1), slog.Int("of", n))

		items, stored, rowErrs, err := r.runBatch(ctx, cat, prompt)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				r.log.ErrorContext(ctx, "store unavailable, aborting job",
					slog.String("category", cat.Name), batch, slog.String("error", err.Error()))
				res.Failed++
				return res, err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			res.Failed++
			r.log.ErrorContext(ctx, "batch failed",
				slog.String("category", cat.Name), batch, slog.String("error", err.Error()))
			continue
		}

		res.Succeeded++
		res.Items += items
		res.Persisted += stored
		res.RowErrors += rowErrs
		r.log.InfoContext(ctx, "batch done",
			slog.String("category", cat.Name), batch,
			slog.Int("items", items),
			slog.Int("persisted", stored),
			slog.Int("total_items", res.Items),
		)
	}

	r.log.InfoContext(ctx, "category finished",
		slog.String("category", cat.Name),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed),
		slog.Int("items", res.Items),
		slog.Int("persisted", res.Persisted),
		slog.Int("row_errors", res.RowErrors),
	)
	return res, nil
}

func (r *Runner) runBatch(ctx context.Context, cat catalog.Category, prompt string) (items, stored, rowErrs int, err error) {
	raw, err := r.generate(ctx, prompt)
	if err != nil {
		return 0, 0, 0, err
	}

	payload, err := Decode(cat.Kind, raw)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("decode %s: %w", cat.Name, err)
	}
	items = CountItems(raw)

	if _, ok := payload.(UnsupportedPayload); ok {
		r.log.InfoContext(ctx, "category has no mapping, nothing stored",
			slog.String("category", cat.Name), slog.Int("items", items))
		return items, 0, 0, nil
	}

	rows, rejected := Map(cat, payload)
	for _, re := range rejected {
		r.log.WarnContext(ctx, "element skipped",
			slog.String("category", cat.Name),
			slog.Int("index", re.Index),
			slog.String("error", re.Err.Error()),
		)
	}

	if r.cfg.DryRun {
		r.log.InfoContext(ctx, "dry run, rows not written",
			slog.String("category", cat.Name), slog.Int("rows", rows.Len()))
		return items, 0, len(rejected), nil
	}

	stored, storeRejected, err := r.store.Persist(ctx, cat, rows)
	if err != nil {
		return items, 0, len(rejected), fmt.Errorf("persist %s: %w", cat.Name, err)
	}
	return items, stored, len(rejected) + len(storeRejected), nil
}

// generate calls the model, retrying only failures classified as retryable.
func (r *Runner) generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	for attempt := 0; ; attempt++ {
		raw, err := r.gen.Generate(ctx, r.cfg.SystemInstruction, prompt)
		if err == nil {
			return raw, nil
		}
		if attempt >= r.cfg.MaxRetries || !provider.IsRetryable(err) || ctx.Err() != nil {
			return nil, err
		}

		wait := max(r.cfg.RetryDelay, provider.RetryAfter(err))
		r.log.WarnContext(ctx, "retrying generation",
			slog.Int("attempt", attempt+1),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
