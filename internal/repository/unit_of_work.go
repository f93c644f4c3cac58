package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// UnitOfWork runs fn in one transaction. fn's writes commit together or
// not at all
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type unitOfWorkHandler struct {
	Db *sql.DB
}

func NewUnitOfWork(db *sql.DB) UnitOfWork {
	return unitOfWorkHandler{Db: db}
}

func (h unitOfWorkHandler) Do(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := h.Db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
