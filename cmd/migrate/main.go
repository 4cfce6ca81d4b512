// Command migrate applies the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Requires DATABASE_DSN (or database.dsn in the config file). Defaults to up.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/prize2pride-backend/internal/config"
	"github.com/heartmarshall/prize2pride-backend/migrations"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := run(command, cfg.Database.DSN); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}

func run(command, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			fmt.Printf("applied %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
		}
		return err
	case "down":
		r, err := provider.Down(ctx)
		if r != nil {
			fmt.Printf("rolled back %d %s\n", r.Source.Version, r.Source.Path)
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			applied := "-"
			if !st.AppliedAt.IsZero() {
				applied = st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-10s %-25s %s\n", st.Source.Version, st.State, applied, st.Source.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
}
