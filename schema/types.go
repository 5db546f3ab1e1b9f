// Package schema provides table definition objects that render SQLite
// CREATE and DROP statements.
package schema

import (
	"fmt"
	"strings"
)

// DataType is a SQLite storage class.
type DataType string

// Storage classes.
const (
	Null    DataType = "NULL"
	Integer DataType = "INTEGER"
	Real    DataType = "REAL"
	Text    DataType = "TEXT"
	Blob    DataType = "BLOB"
)

// ParseDataType resolves a storage class name, ignoring case.
func ParseDataType(name string) (DataType, error) {
	switch dt := DataType(strings.ToUpper(strings.TrimSpace(name))); dt {
	case Null, Integer, Real, Text, Blob:
		return dt, nil
	default:
		return "", fmt.Errorf("unknown data type %q", name)
	}
}

// Action is a foreign key constraint action.
type Action string

// Foreign key constraint actions.
const (
	SetNull    Action = "SET NULL"
	SetDefault Action = "SET DEFAULT"
	Restrict   Action = "RESTRICT"
	NoAction   Action = "NO ACTION"
	Cascade    Action = "CASCADE"
)

// ParseAction resolves an action name such as "set null" or "cascade",
// ignoring case and repeated whitespace.
func ParseAction(name string) (Action, error) {
	switch a := Action(strings.ToUpper(strings.Join(strings.Fields(name), " "))); a {
	case SetNull, SetDefault, Restrict, NoAction, Cascade:
		return a, nil
	default:
		return "", fmt.Errorf("unknown foreign key action %q", name)
	}
}
