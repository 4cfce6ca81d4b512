package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres/example"
	"github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres/transformation"
	"github.com/heartmarshall/prize2pride-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/prize2pride-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/prize2pride-backend/internal/app/generator"
	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
	"github.com/heartmarshall/prize2pride-backend/internal/config"
)

// GenerateOptions are the command-line choices of one generation run.
type GenerateOptions struct {
	// Category selects categories by name prefix; empty runs the whole catalog.
	Category string
	DryRun   bool
}

// Generate runs generation jobs for the selected categories. The database is
// opened once for the whole run and is not touched in dry-run mode.
func Generate(ctx context.Context, cfg *config.Config, opts GenerateOptions, logger *slog.Logger) (generator.Summary, error) {
	categories, err := catalog.Default().Select(opts.Category)
	if err != nil {
		return generator.Summary{}, err
	}
	if err := cfg.Generation.ValidateForRun(); err != nil {
		return generator.Summary{}, fmt.Errorf("config: %w", err)
	}

	gen, err := NewGenerator(cfg.Generation, logger)
	if err != nil {
		return generator.Summary{}, err
	}

	runCfg := generator.Config{
		SystemInstruction: cfg.Generation.SystemInstruction,
		BatchDelay:        cfg.Generation.BatchDelay,
		MaxRetries:        cfg.Generation.MaxRetries,
		RetryDelay:        cfg.Generation.RetryDelay,
		DryRun:            opts.DryRun,
	}

	if opts.DryRun {
		return generator.NewRunner(gen, nil, runCfg, logger).RunAll(ctx, categories)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, postgres.AppGenerator)
	if err != nil {
		return generator.Summary{}, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	persister := generator.NewPersister(
		postgres.NewTxManager(pool),
		example.New(pool),
		transformation.New(pool),
		logger,
	)
	return generator.NewRunner(gen, persister, runCfg, logger).RunAll(ctx, categories)
}

// NewGenerator builds the generation client configured by cfg.Provider.
func NewGenerator(cfg config.GenerationConfig, logger *slog.Logger) (generator.Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewClient(openai.Config{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.RequestTimeout,
		}, logger), nil
	case config.ProviderAnthropic:
		return anthropic.NewClient(anthropic.Config{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.RequestTimeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}
