// Package client executes statements against a SQL database and maps rows
// to structs.
package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/tplib/comfort/internal/debug"
)

// Provider names a supported database engine.
type Provider string

// Supported providers.
const (
	SQLite   Provider = "sqlite"
	MySQL    Provider = "mysql"
	Postgres Provider = "postgres"
)

// ParseProvider resolves a provider name, accepting common aliases.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql":
		return Postgres, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, name)
	}
}

// driverName maps providers to database/sql driver names
func (p Provider) driverName() string {
	switch p {
	case SQLite:
		return "sqlite3"
	case MySQL:
		return "mysql"
	case Postgres:
		return "postgres"
	default:
		return ""
	}
}

// DefaultConnectTimeout bounds the initial ping when Config leaves it unset.
const DefaultConnectTimeout = 5 * time.Second

// Config describes how to open a Client.
type Config struct {
	Provider       Provider
	DSN            string
	ConnectTimeout time.Duration
}

// conn is the subset of *sql.DB and *sql.Tx used to run statements.
type conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Client runs statements against one database. It is safe for concurrent
// use when backed by *sql.DB; a Client handed to a transaction callback is
// bound to that transaction.
type Client struct {
	db          *sql.DB
	conn        conn
	provider    Provider
	middlewares []Middleware
}

// Open opens and pings a database. For SQLite the pool is pinned to a
// single connection and foreign key enforcement is switched on.
func Open(ctx context.Context, cfg Config) (*Client, error) {
	driver := cfg.Provider.driverName()
	if driver == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Provider == SQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Provider == SQLite {
		if _, err := db.ExecContext(pingCtx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	debug.Debug().Str("provider", string(cfg.Provider)).Msg("database opened")
	return NewFromDB(cfg.Provider, db)
}

// NewFromDB creates a client from an existing connection pool.
func NewFromDB(provider Provider, db *sql.DB) (*Client, error) {
	if provider.driverName() == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	if db == nil {
		return nil, ErrNotConnected
	}
	return &Client{db: db, conn: db, provider: provider}, nil
}

// Provider returns the database engine the client talks to.
func (c *Client) Provider() Provider {
	return c.provider
}

// DB returns the underlying connection pool.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Ping verifies the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	if c.db == nil {
		return ErrNotConnected
	}
	return c.db.PingContext(ctx)
}

// Close closes the connection pool.
func (c *Client) Close() error {
	if c.db == nil {
		return ErrNotConnected
	}
	if _, inTx := c.conn.(*sql.Tx); inTx {
		return fmt.Errorf("close called on a transaction client")
	}
	return c.db.Close()
}

// exec runs a statement that returns no rows.
func (c *Client) exec(ctx context.Context, op, table, query string, args []any) (sql.Result, error) {
	if c == nil || c.conn == nil {
		return nil, ErrNotConnected
	}

	query = c.provider.rebind(query)
	var res sql.Result
	err := c.run(ctx, op, table, query, args, func() error {
		var err error
		res, err = c.conn.ExecContext(ctx, query, args...)
		return err
	})
	if err == nil && res == nil {
		err = ErrNotExecuted
	}
	if err != nil {
		return nil, newStatementError(op, table, query, args, err)
	}
	return res, nil
}

// query runs a statement that returns rows.
func (c *Client) query(ctx context.Context, op, table, query string, args []any) (*sql.Rows, error) {
	if c == nil || c.conn == nil {
		return nil, ErrNotConnected
	}

	query = c.provider.rebind(query)
	var rows *sql.Rows
	err := c.run(ctx, op, table, query, args, func() error {
		var err error
		rows, err = c.conn.QueryContext(ctx, query, args...)
		return err
	})
	if err == nil && rows == nil {
		err = ErrNotExecuted
	}
	if err != nil {
		return nil, newStatementError(op, table, query, args, err)
	}
	return rows, nil
}

// run passes a statement through the middleware chain and logs it.
func (c *Client) run(ctx context.Context, op, table, query string, args []any, do func() error) error {
	event := &StatementEvent{
		Op:    op,
		Table: table,
		SQL:   query,
		Args:  args,
	}
	err := c.executeWithMiddleware(ctx, event, do)

	log := debug.Debug()
	if err != nil {
		log = debug.Warn().Err(err)
	}
	log.Str("op", op).
		Str("sql", query).
		Interface("args", args).
		Dur("took", event.Duration).
		Msg("statement")
	return err
}
