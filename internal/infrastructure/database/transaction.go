package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TransactionManager runs a unit of work in a single Postgres transaction.
type TransactionManager struct {
	pool   PostgresPool
	logger *zap.Logger
}

func NewTransactionManager(pool PostgresPool, logger *zap.Logger) *TransactionManager {
	return &TransactionManager{pool: pool, logger: logger}
}

// ExecuteTransaction commits when fn returns nil and rolls back otherwise.
// fn's error is returned unchanged so callers can classify it.
func (tm *TransactionManager) ExecuteTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := tm.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			tm.logger.Warn("database transaction rollback failed", zap.Error(rbErr))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
