package schema

import (
	"fmt"

	"github.com/tplib/comfort/query/condition"
	"github.com/tplib/comfort/query/sqlgen"
)

// Check is a table level CHECK constraint.
type Check struct {
	conds sqlgen.Chain
}

// NewCheck creates a check from conditions linked with AND.
func NewCheck(conds ...condition.Condition) *Check {
	return (&Check{}).Add(conds...)
}

// Add appends conditions linked with AND.
func (c *Check) Add(conds ...condition.Condition) *Check {
	c.conds.And(condition.Strings(conds...)...)
	return c
}

// AddSQL appends raw fragments linked with AND.
func (c *Check) AddSQL(fragments ...string) *Check {
	c.conds.And(fragments...)
	return c
}

// String renders "CHECK (...)", or an empty string without conditions.
func (c *Check) String() string {
	if c == nil {
		return ""
	}
	compiled := c.conds.Compile()
	if compiled == "" {
		return ""
	}
	return "CHECK (" + compiled + ")"
}

// ForeignKey is a FOREIGN KEY constraint on a single column.
type ForeignKey struct {
	column    string
	refTable  string
	refColumn string
	onUpdate  Action
	onDelete  Action
}

// NewForeignKey creates a foreign key constraint on column.
func NewForeignKey(column string) *ForeignKey {
	return &ForeignKey{column: column}
}

// References sets the referenced table and column.
func (f *ForeignKey) References(table, column string) *ForeignKey {
	f.refTable = table
	f.refColumn = column
	return f
}

// OnUpdate sets the action taken when the parent key is updated.
func (f *ForeignKey) OnUpdate(a Action) *ForeignKey {
	f.onUpdate = a
	return f
}

// OnDelete sets the action taken when the parent key is deleted.
func (f *ForeignKey) OnDelete(a Action) *ForeignKey {
	f.onDelete = a
	return f
}

// String renders the constraint. Unset actions are omitted.
func (f *ForeignKey) String() string {
	s := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)", f.column, f.refTable, f.refColumn)
	if f.onUpdate != "" {
		s += " ON UPDATE " + string(f.onUpdate)
	}
	if f.onDelete != "" {
		s += " ON DELETE " + string(f.onDelete)
	}
	return s
}
