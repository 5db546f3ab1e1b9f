package builder

// FromQuery adds a nested query as a FROM source. The nested query is
// compiled immediately; later changes to sub do not affect q.
func (q *Query) FromQuery(sub *Query) *Query {
	q.from = append(q.from, "("+sub.ToSQL()+")")
	return q
}

// FromQueryAs adds a nested query as an aliased FROM source.
func (q *Query) FromQueryAs(sub *Query, alias string) *Query {
	q.from = append(q.from, "("+sub.ToSQL()+") AS "+alias)
	return q
}
