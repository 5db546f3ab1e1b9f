package client

import (
	"context"
	"database/sql"
	"fmt"
)

// TransactionFunc runs inside a transaction. The client it receives is
// bound to the transaction.
type TransactionFunc func(tx *Client) error

// Transaction executes fn within a database transaction.
// If fn returns an error or panics the transaction is rolled back,
// otherwise it is committed.
func (c *Client) Transaction(ctx context.Context, fn TransactionFunc) error {
	return c.TransactionWithOptions(ctx, nil, fn)
}

// TransactionWithOptions executes fn within a transaction started with opts.
func (c *Client) TransactionWithOptions(ctx context.Context, opts *sql.TxOptions, fn TransactionFunc) error {
	if c.db == nil {
		return ErrNotConnected
	}
	if _, inTx := c.conn.(*sql.Tx); inTx {
		return fmt.Errorf("nested transactions are not supported")
	}

	sqlTx, err := c.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tx := &Client{
		db:          c.db,
		conn:        sqlTx,
		provider:    c.provider,
		middlewares: c.middlewares,
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
