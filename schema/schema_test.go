package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplib/comfort/query/condition"
	"github.com/tplib/comfort/schema"
)

func TestTable_CreateStatement(t *testing.T) {
	tests := []struct {
		name  string
		table *schema.Table
		want  string
	}{
		{
			name:  "single column",
			table: schema.NewTable("t", schema.NewColumn("id", schema.Integer).PrimaryKey().NotNull()),
			want:  "CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY NOT NULL);",
		},
		{
			name: "columns and check",
			table: schema.NewTable("users",
				schema.NewColumn("id", schema.Integer).PrimaryKey().Autoincrement(),
				schema.NewColumn("name", schema.Text).NotNull().Unique(),
				schema.NewColumn("score", schema.Real),
			).WithCheck(schema.NewCheck(condition.GreaterEq("score", condition.Int(0)))),
			want: "CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY AUTOINCREMENT, " +
				"name TEXT NOT NULL UNIQUE, score REAL, CHECK (score >= 0));",
		},
		{
			name: "foreign keys are comma separated",
			table: schema.NewTable("members",
				schema.NewColumn("user_id", schema.Integer),
				schema.NewColumn("team_id", schema.Integer),
			).WithForeignKeys(
				schema.NewForeignKey("user_id").References("users", "id").OnDelete(schema.Cascade),
				schema.NewForeignKey("team_id").References("teams", "id"),
			),
			want: "CREATE TABLE IF NOT EXISTS members (user_id INTEGER, team_id INTEGER, " +
				"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE, " +
				"FOREIGN KEY (team_id) REFERENCES teams(id));",
		},
		{
			name: "empty check is omitted",
			table: schema.NewTable("t", schema.NewColumn("a", schema.Blob)).
				WithCheck(schema.NewCheck()),
			want: "CREATE TABLE IF NOT EXISTS t (a BLOB);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.table.CreateStatement())
		})
	}
}

func TestColumn_DefinitionOrder(t *testing.T) {
	col := schema.NewColumn("id", schema.Integer).
		CheckSQL("id > 0").
		Autoincrement().
		Unique().
		NotNull().
		PrimaryKey().
		Check(condition.Less("id", condition.Int(1000)))

	assert.Equal(t, "id INTEGER PRIMARY KEY NOT NULL UNIQUE AUTOINCREMENT CHECK (id > 0 AND id < 1000)", col.Definition())
	assert.Equal(t, "id", col.Name())
	assert.Equal(t, schema.Integer, col.DataType())
}

func TestCheck_String(t *testing.T) {
	var nilCheck *schema.Check
	assert.Equal(t, "", nilCheck.String())
	assert.Equal(t, "", schema.NewCheck().String())

	c := schema.NewCheck(condition.Neq("a", condition.Text("x"))).AddSQL("b IS NOT NULL")
	assert.Equal(t, "CHECK (a != 'x' AND b IS NOT NULL)", c.String())

	blank := schema.NewCheck(condition.Condition{}).AddSQL("b > 0", " ")
	assert.Equal(t, "CHECK (b > 0)", blank.String())
	assert.Equal(t, "", schema.NewCheck().AddSQL("").String())
	assert.Equal(t, "x INTEGER CHECK (x > 0)", schema.NewColumn("x", schema.Integer).CheckSQL("x > 0", "").Definition())
}

func TestForeignKey_String(t *testing.T) {
	fk := schema.NewForeignKey("owner").
		References("users", "id").
		OnDelete(schema.SetNull).
		OnUpdate(schema.NoAction)

	assert.Equal(t, "FOREIGN KEY (owner) REFERENCES users(id) ON UPDATE NO ACTION ON DELETE SET NULL", fk.String())
}

func TestTable_Accessors(t *testing.T) {
	id := schema.NewColumn("id", schema.Integer)
	table := schema.NewTable("things", id)

	assert.Equal(t, "things", table.Name())
	assert.Equal(t, []*schema.Column{id}, table.Columns())
	assert.Equal(t, "DROP TABLE IF EXISTS things;", table.DropStatement())
}

func TestParse(t *testing.T) {
	dt, err := schema.ParseDataType(" integer ")
	require.NoError(t, err)
	assert.Equal(t, schema.Integer, dt)

	_, err = schema.ParseDataType("varchar")
	assert.Error(t, err)

	a, err := schema.ParseAction("set   default")
	require.NoError(t, err)
	assert.Equal(t, schema.SetDefault, a)

	_, err = schema.ParseAction("explode")
	assert.Error(t, err)
}
