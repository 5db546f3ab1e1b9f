package schema

import (
	"strings"

	"github.com/tplib/comfort/query/condition"
	"github.com/tplib/comfort/query/sqlgen"
)

// Column describes a single column of a table.
type Column struct {
	name          string
	dataType      DataType
	primaryKey    bool
	notNull       bool
	autoincrement bool
	unique        bool
	check         sqlgen.Chain
}

// NewColumn creates a column with no constraints.
func NewColumn(name string, dataType DataType) *Column {
	return &Column{name: name, dataType: dataType}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// DataType returns the storage class.
func (c *Column) DataType() DataType { return c.dataType }

// PrimaryKey marks the column as the primary key.
func (c *Column) PrimaryKey() *Column {
	c.primaryKey = true
	return c
}

// NotNull marks the column as NOT NULL.
func (c *Column) NotNull() *Column {
	c.notNull = true
	return c
}

// Autoincrement marks the column as AUTOINCREMENT.
func (c *Column) Autoincrement() *Column {
	c.autoincrement = true
	return c
}

// Unique marks the column as UNIQUE.
func (c *Column) Unique() *Column {
	c.unique = true
	return c
}

// Check adds CHECK conditions linked with AND.
func (c *Column) Check(conds ...condition.Condition) *Column {
	c.check.And(condition.Strings(conds...)...)
	return c
}

// CheckSQL adds raw CHECK fragments linked with AND.
func (c *Column) CheckSQL(fragments ...string) *Column {
	c.check.And(fragments...)
	return c
}

// Definition renders the column as it appears inside CREATE TABLE. Flags
// are emitted in a fixed order regardless of the order they were set.
func (c *Column) Definition() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteString(" ")
	b.WriteString(string(c.dataType))

	if c.primaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.notNull {
		b.WriteString(" NOT NULL")
	}
	if c.unique {
		b.WriteString(" UNIQUE")
	}
	if c.autoincrement {
		b.WriteString(" AUTOINCREMENT")
	}
	if check := c.check.Compile(); check != "" {
		b.WriteString(" CHECK (")
		b.WriteString(check)
		b.WriteString(")")
	}
	return b.String()
}
