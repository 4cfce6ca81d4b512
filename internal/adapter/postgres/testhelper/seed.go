package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedExample inserts one language example with the given level and status
// and returns it as stored. TextRu carries a unique suffix so assertions can
// find the row among rows written by other tests.
func SeedExample(t *testing.T, pool *pgxpool.Pool, level int, status domain.ReviewStatus) domain.Example {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	ex := domain.Example{
		LevelID:  level,
		TextRu:   "пример-" + suffix,
		TextEn:   ptr("example-" + suffix),
		Scenario: ptr("street"),
		Tags:     []string{},
		Status:   status,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO language_examples (level_id, text_ru, text_en, scenario, review_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		ex.LevelID, ex.TextRu, ex.TextEn, ex.Scenario, string(ex.Status),
	).Scan(&ex.ID, &ex.CreatedAt, &ex.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed example: %v", err)
	}

	return ex
}

func ptr[T any](v T) *T { return &v }
