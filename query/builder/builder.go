// Package builder provides a fluent SELECT statement builder.
//
// A Query accumulates clauses and compiles them in a fixed order:
// SELECT, FROM, JOIN, WHERE, GROUP BY, HAVING, ORDER BY, LIMIT. Builder
// methods never fail; misuse yields empty or dropped clauses rather than
// errors.
//
//	sql := builder.New().
//		Table("users").Select("id", "name").
//		From("users").
//		Where(condition.Eq("id", condition.Param)).
//		ToSQL()
package builder

import (
	"strconv"
	"strings"

	"github.com/tplib/comfort/query/condition"
	"github.com/tplib/comfort/query/sqlgen"
)

// selection is the list of columns requested under one table marker.
type selection struct {
	table   string
	columns []string
}

// Query builds a SELECT statement.
type Query struct {
	currentTable string
	selections   []selection
	from         []string
	joins        []*join
	where        sqlgen.Chain
	groupBy      []string
	having       sqlgen.Chain
	orderBy      []sqlgen.Sort
	limit        *limitOffset
}

type limitOffset struct {
	rowCount int
	offset   int
}

// New creates an empty query.
func New() *Query {
	return &Query{}
}

// Table sets the table used to qualify columns passed to subsequent Select
// calls.
func (q *Query) Table(name string) *Query {
	q.currentTable = name
	return q
}

// Select sets the columns selected under the current table. Selecting again
// under the same table replaces the earlier column list.
func (q *Query) Select(cols ...string) *Query {
	for i := range q.selections {
		if q.selections[i].table == q.currentTable {
			q.selections[i].columns = cols
			return q
		}
	}
	q.selections = append(q.selections, selection{table: q.currentTable, columns: cols})
	return q
}

// From adds tables to the FROM clause. Multiple sources form an implicit
// cross join.
func (q *Query) From(tables ...string) *Query {
	q.from = append(q.from, tables...)
	return q
}

// Where adds conditions linked with AND.
func (q *Query) Where(conds ...condition.Condition) *Query {
	q.where.And(condition.Strings(conds...)...)
	return q
}

// OrWhere adds conditions linked with OR.
func (q *Query) OrWhere(conds ...condition.Condition) *Query {
	q.where.Or(condition.Strings(conds...)...)
	return q
}

// WhereSQL adds raw condition fragments linked with AND.
func (q *Query) WhereSQL(fragments ...string) *Query {
	q.where.And(fragments...)
	return q
}

// OrWhereSQL adds raw condition fragments linked with OR.
func (q *Query) OrWhereSQL(fragments ...string) *Query {
	q.where.Or(fragments...)
	return q
}

// GroupBy appends GROUP BY columns. Duplicates are kept.
func (q *Query) GroupBy(cols ...string) *Query {
	q.groupBy = append(q.groupBy, cols...)
	return q
}

// Having adds HAVING conditions linked with AND. HAVING is only rendered
// when the query has a GROUP BY.
func (q *Query) Having(conds ...condition.Condition) *Query {
	q.having.And(condition.Strings(conds...)...)
	return q
}

// OrHaving adds HAVING conditions linked with OR.
func (q *Query) OrHaving(conds ...condition.Condition) *Query {
	q.having.Or(condition.Strings(conds...)...)
	return q
}

// HavingSQL adds raw HAVING fragments linked with AND.
func (q *Query) HavingSQL(fragments ...string) *Query {
	q.having.And(fragments...)
	return q
}

// OrHavingSQL adds raw HAVING fragments linked with OR.
func (q *Query) OrHavingSQL(fragments ...string) *Query {
	q.having.Or(fragments...)
	return q
}

// OrderBy appends sort specs.
func (q *Query) OrderBy(sorts ...sqlgen.Sort) *Query {
	q.orderBy = append(q.orderBy, sorts...)
	return q
}

// OrderByAsc appends ascending sort specs.
func (q *Query) OrderByAsc(cols ...string) *Query {
	for _, c := range cols {
		q.orderBy = append(q.orderBy, sqlgen.SortAsc(c))
	}
	return q
}

// OrderByDesc appends descending sort specs.
func (q *Query) OrderByDesc(cols ...string) *Query {
	for _, c := range cols {
		q.orderBy = append(q.orderBy, sqlgen.SortDesc(c))
	}
	return q
}

// Limit restricts the result to rowCount rows starting at offset.
func (q *Query) Limit(rowCount, offset int) *Query {
	q.limit = &limitOffset{rowCount: rowCount, offset: offset}
	return q
}

// String implements fmt.Stringer.
func (q *Query) String() string {
	return q.ToSQL()
}

// ToSQL compiles the statement.
func (q *Query) ToSQL() string {
	var b strings.Builder

	b.WriteString("SELECT ")
	b.WriteString(q.compileSelect())

	if from := q.compileFrom(); from != "" {
		b.WriteString(" FROM ")
		b.WriteString(from)
	}
	if joins := q.compileJoins(); joins != "" {
		b.WriteString(" ")
		b.WriteString(joins)
	}
	if where := q.where.Compile(); where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	groupBy := strings.Join(q.groupBy, ", ")
	if groupBy != "" {
		b.WriteString(" GROUP BY ")
		b.WriteString(groupBy)

		if having := q.having.Compile(); having != "" {
			b.WriteString(" HAVING ")
			b.WriteString(having)
		}
	}

	if orderBy := sqlgen.CompileSorts(q.orderBy); orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	if q.limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit.rowCount))
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(q.limit.offset))
	}

	return b.String()
}

func (q *Query) compileSelect() string {
	var cols []string
	for _, s := range q.selections {
		if s.table == "" {
			if len(s.columns) > 0 {
				cols = append(cols, strings.Join(s.columns, ", "))
			}
			continue
		}
		for _, c := range s.columns {
			cols = append(cols, s.table+"."+c)
		}
	}
	if len(cols) == 0 {
		return "*"
	}
	return strings.Join(cols, ", ")
}

func (q *Query) compileFrom() string {
	return strings.Join(q.from, ", ")
}
