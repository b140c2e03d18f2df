package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TxFunc is executed inside a transaction. It must use tx for every statement.
type TxFunc func(tx *gorm.DB) error

// WithTransaction wraps fn in a transaction bound to ctx.
// Rolls back when fn returns an error or panics, commits otherwise.
func WithTransaction(ctx context.Context, db *gorm.DB, fn TxFunc) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
