package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// id may be nil for inserts.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != nil {
		label = fmt.Sprintf("%s %v", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", label, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
		case "23514", "23502", "22P02": // check, not_null, invalid_text_representation
			return fmt.Errorf("%s: %w: %s", label, domain.ErrValidation, pgErr.Message)
		}
	}

	if IsConnectivity(err) {
		return fmt.Errorf("%s: %w: %v", label, domain.ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", label, err)
}

// IsConnectivity reports whether err means the database cannot be reached
// or dropped the connection, as opposed to rejecting a statement.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08": // connection_exception class
			return true
		case pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03", pgErr.Code == "53300":
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed)
}

func classifyConn(err error) error {
	if IsConnectivity(err) && !errors.Is(err, domain.ErrStoreUnavailable) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}
