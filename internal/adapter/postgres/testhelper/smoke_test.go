package testhelper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

func TestSetupTestDB_SeedIsReadable(t *testing.T) {
	pool := SetupTestDB(t)

	ex := SeedExample(t, pool, 3, domain.ReviewStatusPending)

	var (
		textRu string
		status string
		level  int
	)
	err := pool.QueryRow(context.Background(),
		`SELECT text_ru, review_status, level_id FROM language_examples WHERE id = $1`, ex.ID,
	).Scan(&textRu, &status, &level)
	require.NoError(t, err)

	assert.Equal(t, ex.TextRu, textRu)
	assert.Equal(t, "pending", status)
	assert.Equal(t, 3, level)
}

func TestSetupTestDB_MigrationsApplied(t *testing.T) {
	pool := SetupTestDB(t)

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_name IN ('language_examples', 'language_transformations')`,
	).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
