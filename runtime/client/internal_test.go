package client

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		provider Provider
		in       string
		want     string
	}{
		{Postgres, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = $1 AND b = $2"},
		{Postgres, "SELECT '?' FROM t WHERE a = ?", "SELECT '?' FROM t WHERE a = $1"},
		{Postgres, `SELECT "we?rd" FROM t WHERE a = 'it''s?' AND b = ?`, `SELECT "we?rd" FROM t WHERE a = 'it''s?' AND b = $1`},
		{Postgres, "SELECT 1", "SELECT 1"},
		{SQLite, "a = ?", "a = ?"},
		{MySQL, "a = ?", "a = ?"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.provider.rebind(tt.in))
	}
}

func TestInsertVerb(t *testing.T) {
	assert.Equal(t, "INSERT OR REPLACE INTO", SQLite.insertVerb())
	assert.Equal(t, "REPLACE INTO", MySQL.insertVerb())
	assert.Equal(t, "INSERT INTO", Postgres.insertVerb())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrUniqueConstraint},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ErrUniqueConstraint},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ErrForeignKeyConstraint},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, ErrNotNullConstraint},
		{"sqlite check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, ErrCheckConstraint},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, nil},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, ErrUniqueConstraint},
		{"mysql fk", &mysql.MySQLError{Number: 1452}, ErrForeignKeyConstraint},
		{"mysql null", &mysql.MySQLError{Number: 1048}, ErrNotNullConstraint},
		{"mysql check", &mysql.MySQLError{Number: 3819}, ErrCheckConstraint},
		{"mysql other", &mysql.MySQLError{Number: 1146}, nil},
		{"pq unique", &pq.Error{Code: "23505"}, ErrUniqueConstraint},
		{"pq fk", &pq.Error{Code: "23503"}, ErrForeignKeyConstraint},
		{"pq null", &pq.Error{Code: "23502"}, ErrNotNullConstraint},
		{"pq check", &pq.Error{Code: "23514"}, ErrCheckConstraint},
		{"plain", errors.New("nope"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))

			stmtErr := newStatementError("exec", "t", "SQL", nil, tt.err)
			assert.ErrorIs(t, stmtErr, tt.err)
			if tt.want != nil {
				assert.ErrorIs(t, stmtErr, tt.want)
			}
		})
	}
}

func TestBatchError_Message(t *testing.T) {
	b := &BatchError{Op: "insert", Total: 3}
	assert.NoError(t, b.errOrNil())

	b.Failed = append(b.Failed, &ItemError{Index: 0, Err: errors.New("a")}, &ItemError{Index: 2, Err: errors.New("b")})
	assert.Equal(t, "insert: 2 of 3 failed: record 0: a (and 1 more)", b.Error())
}
