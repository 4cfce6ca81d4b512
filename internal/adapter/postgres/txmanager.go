package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoTx is returned by RunInSavepoint when ctx carries no transaction.
var ErrNoTx = errors.New("no transaction in context")

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls are NOT supported; use RunInSavepoint inside a
// RunInTx callback instead.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction (Read Committed).
// fn's error rolls back and is returned unchanged; a panic rolls back and
// re-panics. Failures to begin or commit caused by a lost connection wrap
// domain.ErrStoreUnavailable.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classifyConn(err))
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return rollbackFailed("rollback", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", classifyConn(err))
	}

	return nil
}

// RunInSavepoint executes fn inside a savepoint of the transaction carried by
// ctx. If fn fails, only the work done since the savepoint is undone and the
// outer transaction stays usable.
func (m *TxManager) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, ok := txFromCtx(ctx)
	if !ok {
		return ErrNoTx
	}

	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", classifyConn(err))
	}

	if err := fn(withTx(ctx, sp)); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return rollbackFailed("rollback to savepoint", rbErr, err)
		}
		return err
	}

	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", classifyConn(err))
	}
	return nil
}

// rollbackFailed keeps both errors in the chain so a store-unavailable cause
// survives a rollback that fails on the same dead connection.
func rollbackFailed(op string, rbErr, cause error) error {
	return fmt.Errorf("%s: %w (original error: %w)", op, classifyConn(rbErr), cause)
}
