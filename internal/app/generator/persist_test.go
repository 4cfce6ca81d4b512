package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	postgres "github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx() *txManagerMock {
	run := func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	return &txManagerMock{RunInTxFunc: run, RunInSavepointFunc: run}
}

func sampleRows() Rows {
	return Rows{
		Examples: []ExampleRow{
			{Index: 0, Example: domain.NewExample{LevelID: 1, TextRu: "а", Status: domain.ReviewStatusApproved}},
			{Index: 1, Example: domain.NewExample{LevelID: 1, TextRu: "б", Status: domain.ReviewStatusApproved}},
			{Index: 2, Example: domain.NewExample{LevelID: 1, TextRu: "в", Status: domain.ReviewStatusApproved}},
		},
		Transformations: []TransformationRow{
			{Index: 0, Transformation: domain.NewTransformation{InformalText: "x", InformalLevel: 1, FormalText: "y", FormalLevel: 5}},
		},
	}
}

func TestPersister_Persist_AllRows(t *testing.T) {
	t.Parallel()

	tx := passthroughTx()
	examples := &exampleStoreMock{InsertFunc: func(context.Context, domain.NewExample) (int64, error) { return 1, nil }}
	transformations := &transformationStoreMock{InsertFunc: func(context.Context, domain.NewTransformation) (int64, error) { return 1, nil }}

	p := NewPersister(tx, examples, transformations, discardLogger())
	n, rejected, err := p.Persist(context.Background(), lookup(t, "vulgar"), sampleRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 || len(rejected) != 0 {
		t.Errorf("stored = %d, rejected = %v; want 4, none", n, rejected)
	}
	if tx.RunInTxCalls() != 1 {
		t.Errorf("RunInTx calls = %d, want 1 per batch", tx.RunInTxCalls())
	}
	if len(examples.InsertCalls()) != 3 || len(transformations.InsertCalls()) != 1 {
		t.Errorf("insert calls = %d/%d", len(examples.InsertCalls()), len(transformations.InsertCalls()))
	}
}

func TestPersister_Persist_RowFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	examples := &exampleStoreMock{InsertFunc: func(_ context.Context, ex domain.NewExample) (int64, error) {
		if ex.TextRu == "б" {
			return 0, fmt.Errorf("insert: %w", domain.ErrValidation)
		}
		return 1, nil
	}}
	transformations := &transformationStoreMock{InsertFunc: func(context.Context, domain.NewTransformation) (int64, error) { return 1, nil }}

	p := NewPersister(passthroughTx(), examples, transformations, discardLogger())
	n, rejected, err := p.Persist(context.Background(), lookup(t, "vulgar"), sampleRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("stored = %d, want 3", n)
	}
	if len(rejected) != 1 || rejected[0].Index != 1 {
		t.Errorf("rejected = %v, want index 1", rejected)
	}
	if len(examples.InsertCalls()) != 3 {
		t.Errorf("insert calls = %d, want all 3 attempted", len(examples.InsertCalls()))
	}
}

func TestPersister_Persist_StoreUnavailableAborts(t *testing.T) {
	t.Parallel()

	examples := &exampleStoreMock{InsertFunc: func(context.Context, domain.NewExample) (int64, error) {
		return 0, fmt.Errorf("insert: %w", domain.ErrStoreUnavailable)
	}}
	transformations := &transformationStoreMock{InsertFunc: func(context.Context, domain.NewTransformation) (int64, error) { return 1, nil }}

	p := NewPersister(passthroughTx(), examples, transformations, discardLogger())
	n, _, err := p.Persist(context.Background(), lookup(t, "vulgar"), sampleRows())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
	if n != 0 {
		t.Errorf("stored = %d, want 0 after rollback", n)
	}
	if len(examples.InsertCalls()) != 1 {
		t.Errorf("insert calls = %d, want to stop after first", len(examples.InsertCalls()))
	}
}

func TestPersister_Persist_BeginFailure(t *testing.T) {
	t.Parallel()

	tx := &txManagerMock{RunInTxFunc: func(context.Context, func(context.Context) error) error {
		return fmt.Errorf("begin transaction: %w", domain.ErrStoreUnavailable)
	}}
	p := NewPersister(tx, &exampleStoreMock{}, &transformationStoreMock{}, discardLogger())

	_, _, err := p.Persist(context.Background(), lookup(t, "vulgar"), sampleRows())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
}

func TestPersister_Persist_EmptyRowsSkipsTx(t *testing.T) {
	t.Parallel()

	tx := passthroughTx()
	p := NewPersister(tx, &exampleStoreMock{}, &transformationStoreMock{}, discardLogger())

	n, rejected, err := p.Persist(context.Background(), lookup(t, "vulgar"), Rows{})
	if err != nil || n != 0 || rejected != nil {
		t.Fatalf("Persist(empty) = %d, %v, %v", n, rejected, err)
	}
	if tx.RunInTxCalls() != 0 {
		t.Errorf("RunInTx should not be called for an empty batch")
	}
}

func TestPersister_Persist_DroppedConnectionAbortsThroughTxManager(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)

	// The insert sees the dead connection, then both rollbacks fail on it too.
	mock.ExpectBegin()
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("conn closed"))
	mock.ExpectRollback().WillReturnError(errors.New("conn closed"))

	examples := &exampleStoreMock{InsertFunc: func(context.Context, domain.NewExample) (int64, error) { return 1, nil }}
	transformations := &transformationStoreMock{InsertFunc: func(context.Context, domain.NewTransformation) (int64, error) {
		return 0, fmt.Errorf("language_transformation: %w: broken pipe", domain.ErrStoreUnavailable)
	}}

	p := NewPersister(postgres.NewTxManager(mock), examples, transformations, discardLogger())
	n, rejected, err := p.Persist(context.Background(), lookup(t, "vulgar"), sampleRows())

	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
	if n != 0 || len(rejected) != 0 {
		t.Errorf("stored = %d, rejected = %v; want nothing reported per row", n, rejected)
	}
	if len(examples.InsertCalls()) != 0 {
		t.Errorf("example inserts = %d, want none after the connection dropped", len(examples.InsertCalls()))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
