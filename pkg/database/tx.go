package database

import (
	"context"
	"fmt"

	"github.com/hemobank/hemobank_backend/internal/repo"
)

// WithTx runs fn inside a transaction, committing on success and rolling back
// on error or panic. Multi-statement lifecycle operations (distribution
// create/delete with their bag flag flips, guarded bag deletes) go through
// here so the existence check and the mutation are atomic relative to other
// callers.
func WithTx(ctx context.Context, client *repo.Client, fn func(tx *repo.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
