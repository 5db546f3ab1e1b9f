package dsl_test

import (
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplib/comfort/schema"
	"github.com/tplib/comfort/schema/dsl"
)

func TestParse_File(t *testing.T) {
	f, err := os.Open("testdata/shop.schema")
	require.NoError(t, err)
	defer f.Close()

	tables, err := dsl.Parse("shop.schema", f)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "teams", tables[0].Name())
	assert.Equal(t, "users", tables[1].Name())
	assert.Len(t, tables[1].Columns(), 5)

	var out strings.Builder
	for _, table := range tables {
		out.WriteString(table.CreateStatement())
		out.WriteString("\n")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "shop", []byte(out.String()))
}

func TestParse_Columns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare column",
			input: "table t {\n a TEXT\n}",
			want:  "CREATE TABLE IF NOT EXISTS t (a TEXT);",
		},
		{
			name:  "modifier order does not matter",
			input: "table t {\n id INTEGER autoincrement unique not null primary key\n}",
			want:  "CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY NOT NULL UNIQUE AUTOINCREMENT);",
		},
		{
			name:  "semicolon separated",
			input: "table t { a INTEGER; b REAL }",
			want:  "CREATE TABLE IF NOT EXISTS t (a INTEGER, b REAL);",
		},
		{
			name:  "set null and set default",
			input: "table t {\n a INTEGER references x(id) on delete set null on update set default\n}",
			want:  "CREATE TABLE IF NOT EXISTS t (a INTEGER, FOREIGN KEY (a) REFERENCES x(id) ON UPDATE SET DEFAULT ON DELETE SET NULL);",
		},
		{
			name:  "restrict",
			input: "table t {\n a INTEGER REFERENCES x(id) ON DELETE RESTRICT\n}",
			want:  "CREATE TABLE IF NOT EXISTS t (a INTEGER, FOREIGN KEY (a) REFERENCES x(id) ON DELETE RESTRICT);",
		},
		{
			name:  "escaped quote in check",
			input: "table t {\n a TEXT check \"a != \\\"x\\\"\"\n}",
			want:  `CREATE TABLE IF NOT EXISTS t (a TEXT CHECK (a != "x"));`,
		},
		{
			name:  "null storage class",
			input: "table t {\n a null\n}",
			want:  "CREATE TABLE IF NOT EXISTS t (a NULL);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, err := dsl.ParseString("test.schema", tt.input)
			require.NoError(t, err)
			require.Len(t, tables, 1)
			assert.Equal(t, tt.want, tables[0].CreateStatement())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	tables, err := dsl.ParseString("empty.schema", "\n// nothing here\n\n")
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "unknown type",
			input:   "table t {\n a VARCHAR\n}",
			wantErr: "unknown data type",
		},
		{
			name:    "duplicate table",
			input:   "table t {\n a TEXT\n}\ntable T {\n b TEXT\n}",
			wantErr: "declared twice",
		},
		{
			name:    "no columns",
			input:   "table t {\n check \"1\"\n}",
			wantErr: "has no columns",
		},
		{
			name:    "unterminated block",
			input:   "table t {\n a TEXT\n",
			wantErr: "test.schema",
		},
		{
			name:    "missing type",
			input:   "table t {\n a\n}",
			wantErr: "test.schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dsl.ParseString("test.schema", tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustParseString(t *testing.T) {
	assert.Panics(t, func() { dsl.MustParseString("bad.schema", "table {") })

	tables := dsl.MustParseString("ok.schema", "table t { id INTEGER }")
	require.Len(t, tables, 1)
	assert.Equal(t, schema.Integer, tables[0].Columns()[0].DataType())
}
