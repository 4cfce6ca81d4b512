// Command generate fills the language tables with model-generated lessons.
//
// Usage:
//
//	generate [--category=<name>] [--dry-run] [--config=<path>]
//	generate categories
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/prize2pride-backend/internal/app"
	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
	"github.com/heartmarshall/prize2pride-backend/internal/config"
)

var (
	categoryFlag string
	dryRunFlag   bool
	configFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "generate",
	Short:         "Generate lessons with the configured language model",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the generation catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tLEVEL\tBATCH\tTOTAL")
		for _, c := range catalog.Default().All() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", c.Name, c.Kind, c.EffectiveLevel(), c.BatchSize, c.Total)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.Flags().StringVar(&categoryFlag, "category", "", "category name or prefix (default: all categories)")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "generate and map without writing to the database")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config YAML (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log, app.ServiceGenerator)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := app.Generate(ctx, cfg, app.GenerateOptions{Category: categoryFlag, DryRun: dryRunFlag}, logger)
	for _, job := range sum.Jobs {
		logger.Info("category summary",
			slog.String("category", job.Category),
			slog.Int("batches", job.Batches),
			slog.Int("succeeded", job.Succeeded),
			slog.Int("failed", job.Failed),
			slog.Int("items", job.Items),
			slog.Int("persisted", job.Persisted),
			slog.Int("row_errors", job.RowErrors),
		)
	}
	return err
}
