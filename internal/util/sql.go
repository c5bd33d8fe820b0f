package util

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TransactionCallback holds the statements to run inside a transaction.
type TransactionCallback func(*sqlx.Tx) error

// Transaction commits the work of cb if it returns nil. Otherwise, or if cb
// panics, the transaction is rolled back and a failed rollback is reported
// alongside the error of cb.
func Transaction(ctx context.Context, db *sqlx.DB, cb TransactionCallback) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback() // nolint:errcheck
			panic(p)
		}
	}()

	if err := cb(tx); err != nil {
		return ConcatErrors([]error{err, rollback(tx)})
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func rollback(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}

	return nil
}
