// Package dsl parses schema definition files into schema tables.
//
//	// comment
//	table users {
//	  id    INTEGER primary key not null autoincrement
//	  name  TEXT not null unique check "length(name) > 0"
//	  team  INTEGER references teams(id) on delete cascade
//	  check "id > 0"
//	}
//
// Keywords and type names are case-insensitive.
package dsl

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tplib/comfort/schema"
)

// File is the parse tree of a schema definition file.
type File struct {
	Pos    lexer.Position
	Tables []*Table `( Newline | ";" | @@ )*`
}

// Table is a table block.
type Table struct {
	Pos   lexer.Position
	Name  string  `"table" @Ident "{"`
	Items []*Item `( Newline | ";" | @@ )* "}"`
}

// Item is one line inside a table block.
type Item struct {
	Check  *string `  "check" @String`
	Column *Column `| @@`
}

// Column is a column line.
type Column struct {
	Pos       lexer.Position
	Name      string      `@Ident`
	Type      string      `@Ident`
	Modifiers []*Modifier `@@*`
}

// Modifier is a single column constraint.
type Modifier struct {
	PrimaryKey    bool       `  @( "primary" "key" )`
	NotNull       bool       `| @( "not" "null" )`
	Unique        bool       `| @"unique"`
	Autoincrement bool       `| @"autoincrement"`
	Check         *string    `| "check" @String`
	References    *Reference `| @@`
}

// Reference is an inline foreign key.
type Reference struct {
	Pos     lexer.Position
	Table   string      `"references" @Ident`
	Column  string      `"(" @Ident ")"`
	Actions []*OnAction `@@*`
}

// OnAction is an "on update" or "on delete" clause.
type OnAction struct {
	Pos    lexer.Position
	Event  string   `"on" @( "update" | "delete" )`
	Action []string `@( "set" ( "null" | "default" ) | "restrict" | "no" "action" | "cascade" )`
}

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

// Parse parses a schema definition and converts it to tables in
// declaration order.
func Parse(filename string, r io.Reader) ([]*schema.Table, error) {
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return file.Convert()
}

// ParseString parses a schema definition from a string.
func ParseString(filename, input string) ([]*schema.Table, error) {
	return Parse(filename, strings.NewReader(input))
}

// MustParseString parses a schema definition from a string, panicking on error.
func MustParseString(filename, input string) []*schema.Table {
	tables, err := ParseString(filename, input)
	if err != nil {
		panic(err)
	}
	return tables
}

// Convert converts the parse tree to schema tables.
func (f *File) Convert() ([]*schema.Table, error) {
	seen := make(map[string]bool, len(f.Tables))
	tables := make([]*schema.Table, 0, len(f.Tables))
	for _, raw := range f.Tables {
		key := strings.ToLower(raw.Name)
		if seen[key] {
			return nil, fmt.Errorf("%s: table %q declared twice", raw.Pos, raw.Name)
		}
		seen[key] = true

		table, err := raw.convert()
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (t *Table) convert() (*schema.Table, error) {
	var (
		columns []*schema.Column
		fks     []*schema.ForeignKey
		checks  []string
	)
	for _, item := range t.Items {
		if item.Check != nil {
			checks = append(checks, *item.Check)
			continue
		}
		col, colFKs, err := item.Column.convert()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
		fks = append(fks, colFKs...)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: table %q has no columns", t.Pos, t.Name)
	}

	table := schema.NewTable(t.Name, columns...).WithForeignKeys(fks...)
	if len(checks) > 0 {
		table.WithCheck(schema.NewCheck().AddSQL(checks...))
	}
	return table, nil
}

func (c *Column) convert() (*schema.Column, []*schema.ForeignKey, error) {
	dataType, err := schema.ParseDataType(c.Type)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: column %q: %w", c.Pos, c.Name, err)
	}

	col := schema.NewColumn(c.Name, dataType)
	var fks []*schema.ForeignKey
	for _, m := range c.Modifiers {
		switch {
		case m.PrimaryKey:
			col.PrimaryKey()
		case m.NotNull:
			col.NotNull()
		case m.Unique:
			col.Unique()
		case m.Autoincrement:
			col.Autoincrement()
		case m.Check != nil:
			col.CheckSQL(*m.Check)
		case m.References != nil:
			fk, err := m.References.convert(c.Name)
			if err != nil {
				return nil, nil, err
			}
			fks = append(fks, fk)
		}
	}
	return col, fks, nil
}

func (r *Reference) convert(column string) (*schema.ForeignKey, error) {
	fk := schema.NewForeignKey(column).References(r.Table, r.Column)
	for _, a := range r.Actions {
		action, err := schema.ParseAction(strings.Join(a.Action, " "))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Pos, err)
		}
		if strings.EqualFold(a.Event, "update") {
			fk.OnUpdate(action)
		} else {
			fk.OnDelete(action)
		}
	}
	return fk, nil
}
