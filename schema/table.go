package schema

import "strings"

// Table is a table definition.
type Table struct {
	name        string
	columns     []*Column
	check       *Check
	foreignKeys []*ForeignKey
}

// NewTable creates a table with the given columns in order.
func NewTable(name string, columns ...*Column) *Table {
	return &Table{name: name, columns: columns}
}

// WithCheck sets the table level check constraint.
func (t *Table) WithCheck(c *Check) *Table {
	t.check = c
	return t
}

// WithForeignKeys appends foreign key constraints.
func (t *Table) WithForeignKeys(fks ...*ForeignKey) *Table {
	t.foreignKeys = append(t.foreignKeys, fks...)
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column { return t.columns }

// CreateStatement renders CREATE TABLE IF NOT EXISTS for the table.
func (t *Table) CreateStatement() string {
	parts := make([]string, 0, len(t.columns)+len(t.foreignKeys)+1)
	for _, c := range t.columns {
		parts = append(parts, c.Definition())
	}
	if check := t.check.String(); check != "" {
		parts = append(parts, check)
	}
	for _, fk := range t.foreignKeys {
		parts = append(parts, fk.String())
	}
	return "CREATE TABLE IF NOT EXISTS " + t.name + " (" + strings.Join(parts, ", ") + ");"
}

// DropStatement renders DROP TABLE IF EXISTS for the table.
func (t *Table) DropStatement() string {
	return "DROP TABLE IF EXISTS " + t.name + ";"
}
