package builder

import (
	"strings"

	"github.com/tplib/comfort/query/condition"
	"github.com/tplib/comfort/query/sqlgen"
)

// JoinKind is the SQL keyword sequence introducing a join.
type JoinKind string

// Supported join kinds.
const (
	KindJoin           JoinKind = "JOIN"
	KindLeftJoin       JoinKind = "LEFT JOIN"
	KindLeftOuterJoin  JoinKind = "LEFT OUTER JOIN"
	KindRightJoin      JoinKind = "RIGHT JOIN"
	KindRightOuterJoin JoinKind = "RIGHT OUTER JOIN"
	KindInnerJoin      JoinKind = "INNER JOIN"
	KindCrossJoin      JoinKind = "CROSS JOIN"
)

type join struct {
	kind  JoinKind
	table string
	on    sqlgen.Chain
}

// key identifies a join entry. Joining the same table again with the same
// kind reuses the entry.
func (j *join) key() string {
	return strings.ReplaceAll(string(j.kind), " ", "-") + "-" + j.table
}

// JoinClause is returned by the join methods. ON conditions attach to the
// join that produced the handle; the embedded Query keeps the chain going.
type JoinClause struct {
	*Query
	entry *join
}

// On adds ON conditions linked with AND.
func (j *JoinClause) On(conds ...condition.Condition) *JoinClause {
	j.entry.on.And(condition.Strings(conds...)...)
	return j
}

// OrOn adds ON conditions linked with OR.
func (j *JoinClause) OrOn(conds ...condition.Condition) *JoinClause {
	j.entry.on.Or(condition.Strings(conds...)...)
	return j
}

// OnSQL adds raw ON fragments linked with AND.
func (j *JoinClause) OnSQL(fragments ...string) *JoinClause {
	j.entry.on.And(fragments...)
	return j
}

// OrOnSQL adds raw ON fragments linked with OR.
func (j *JoinClause) OrOnSQL(fragments ...string) *JoinClause {
	j.entry.on.Or(fragments...)
	return j
}

// AddJoin adds a join of the given kind. A join without ON conditions is
// not rendered.
func (q *Query) AddJoin(kind JoinKind, table string) *JoinClause {
	entry := &join{kind: kind, table: table}
	for i, existing := range q.joins {
		if existing.key() == entry.key() {
			q.joins[i] = entry
			return &JoinClause{Query: q, entry: entry}
		}
	}
	q.joins = append(q.joins, entry)
	return &JoinClause{Query: q, entry: entry}
}

// Join adds a plain JOIN.
func (q *Query) Join(table string) *JoinClause { return q.AddJoin(KindJoin, table) }

// LeftJoin adds a LEFT JOIN.
func (q *Query) LeftJoin(table string) *JoinClause { return q.AddJoin(KindLeftJoin, table) }

// LeftOuterJoin adds a LEFT OUTER JOIN.
func (q *Query) LeftOuterJoin(table string) *JoinClause {
	return q.AddJoin(KindLeftOuterJoin, table)
}

// RightJoin adds a RIGHT JOIN.
func (q *Query) RightJoin(table string) *JoinClause { return q.AddJoin(KindRightJoin, table) }

// RightOuterJoin adds a RIGHT OUTER JOIN.
func (q *Query) RightOuterJoin(table string) *JoinClause {
	return q.AddJoin(KindRightOuterJoin, table)
}

// InnerJoin adds an INNER JOIN.
func (q *Query) InnerJoin(table string) *JoinClause { return q.AddJoin(KindInnerJoin, table) }

// CrossJoin adds a CROSS JOIN.
func (q *Query) CrossJoin(table string) *JoinClause { return q.AddJoin(KindCrossJoin, table) }

func (q *Query) compileJoins() string {
	parts := make([]string, 0, len(q.joins))
	for _, j := range q.joins {
		on := j.on.Compile()
		if on == "" {
			continue
		}
		parts = append(parts, string(j.kind)+" "+j.table+" ON ("+on+")")
	}
	return strings.Join(parts, " ")
}
