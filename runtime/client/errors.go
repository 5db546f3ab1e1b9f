package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Error types for client operations.
var (
	// ErrNotConnected is returned when the client has no open database.
	ErrNotConnected = errors.New("database not connected")

	// ErrUnsupportedProvider is returned for unknown provider names.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrNotStruct is returned when a record type is not a struct.
	ErrNotStruct = errors.New("record type is not a struct")

	// ErrNotExecuted is returned when a middleware returns without running
	// the statement.
	ErrNotExecuted = errors.New("statement not executed")

	// ErrNoRows is returned when a single-row statement produced nothing.
	ErrNoRows = errors.New("no rows in result set")

	// ErrUniqueConstraint is returned when a unique constraint is violated.
	ErrUniqueConstraint = errors.New("unique constraint violation")

	// ErrForeignKeyConstraint is returned when a foreign key constraint is violated.
	ErrForeignKeyConstraint = errors.New("foreign key constraint violation")

	// ErrNotNullConstraint is returned when a NOT NULL constraint is violated.
	ErrNotNullConstraint = errors.New("not null constraint violation")

	// ErrCheckConstraint is returned when a CHECK constraint is violated.
	ErrCheckConstraint = errors.New("check constraint violation")
)

// StatementError is a failed statement with the context it ran in.
type StatementError struct {
	Op    string
	Table string
	SQL   string
	Args  []any
	Cause error

	kind error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Table, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Cause
}

// Is reports whether the driver error maps to target.
func (e *StatementError) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

func newStatementError(op, table, query string, args []any, cause error) *StatementError {
	var se *StatementError
	if errors.As(cause, &se) {
		cause = se.Cause
	}
	return &StatementError{
		Op:    op,
		Table: table,
		SQL:   query,
		Args:  args,
		Cause: cause,
		kind:  classify(cause),
	}
}

// classify maps driver specific constraint errors to sentinels.
func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrUniqueConstraint
		case sqlite3.ErrConstraintForeignKey:
			return ErrForeignKeyConstraint
		case sqlite3.ErrConstraintNotNull:
			return ErrNotNullConstraint
		case sqlite3.ErrConstraintCheck:
			return ErrCheckConstraint
		}
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return classifyMessage(sqliteErr.Error())
		}
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062:
			return ErrUniqueConstraint
		case 1216, 1217, 1451, 1452:
			return ErrForeignKeyConstraint
		case 1048, 1364:
			return ErrNotNullConstraint
		case 3819:
			return ErrCheckConstraint
		}
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrUniqueConstraint
		case "23503":
			return ErrForeignKeyConstraint
		case "23502":
			return ErrNotNullConstraint
		case "23514":
			return ErrCheckConstraint
		}
		return nil
	}

	return nil
}

func classifyMessage(msg string) error {
	msg = strings.ToUpper(msg)
	switch {
	case strings.Contains(msg, "UNIQUE CONSTRAINT"):
		return ErrUniqueConstraint
	case strings.Contains(msg, "FOREIGN KEY CONSTRAINT"):
		return ErrForeignKeyConstraint
	case strings.Contains(msg, "NOT NULL CONSTRAINT"):
		return ErrNotNullConstraint
	case strings.Contains(msg, "CHECK CONSTRAINT"):
		return ErrCheckConstraint
	default:
		return nil
	}
}

// ItemError is the failure of one record in a batch.
type ItemError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// BatchError collects the failures of a batch in which every item was
// attempted.
type BatchError struct {
	Op     string
	Total  int
	Failed []*ItemError
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	msg := fmt.Sprintf("%s: %d of %d failed", e.Op, len(e.Failed), e.Total)
	if len(e.Failed) > 0 {
		msg += ": " + e.Failed[0].Error()
	}
	if len(e.Failed) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(e.Failed)-1)
	}
	return msg
}

// Unwrap returns the item errors so errors.Is and errors.As see each one.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failed))
	for i, f := range e.Failed {
		errs[i] = f
	}
	return errs
}

// errOrNil returns e when anything failed.
func (e *BatchError) errOrNil() error {
	if len(e.Failed) == 0 {
		return nil
	}
	return e
}

// IsUniqueConstraint checks if an error is a unique constraint violation.
func IsUniqueConstraint(err error) bool {
	return errors.Is(err, ErrUniqueConstraint)
}

// IsForeignKeyConstraint checks if an error is a foreign key constraint violation.
func IsForeignKeyConstraint(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}
