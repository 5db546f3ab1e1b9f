package client

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/tplib/comfort/query/builder"
	"github.com/tplib/comfort/query/condition"
	"github.com/tplib/comfort/schema"
)

// Insert stores each record in table, replacing rows with the same key
// where the engine supports it. Every record is attempted; failures are
// returned together as a *BatchError.
func Insert[T any](ctx context.Context, c *Client, table string, records ...T) error {
	plan, err := planFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return err
	}

	batch := &BatchError{Op: "insert", Total: len(records)}
	for i := range records {
		cols, vals := plan.values(reflect.ValueOf(&records[i]).Elem())
		if len(cols) == 0 {
			batch.Failed = append(batch.Failed, &ItemError{Index: i, Err: fmt.Errorf("%s has no mapped columns", plan.typ)})
			continue
		}

		query := fmt.Sprintf("%s %s (%s) VALUES (%s)",
			c.provider.insertVerb(), table, strings.Join(cols, ", "), placeholders(len(cols)))
		if _, err := c.exec(ctx, "insert", table, query, vals); err != nil {
			batch.Failed = append(batch.Failed, &ItemError{Index: i, Err: err})
		}
	}
	return batch.errOrNil()
}

// Query runs a SELECT and maps every row to a new T. Fields whose column is
// absent from the result keep their zero value.
func Query[T any](ctx context.Context, c *Client, query string, args ...any) ([]T, error) {
	plan, err := planFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	cur, err := c.Rows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	var results []T
	for cur.Next() {
		var item T
		plan.scan(cur, reflect.ValueOf(&item).Elem())
		results = append(results, item)
	}
	if err := cur.Err(); err != nil {
		return nil, newStatementError("query", "", query, args, err)
	}
	return results, nil
}

// QueryBuilder compiles q and runs it like Query.
func QueryBuilder[T any](ctx context.Context, c *Client, q *builder.Query, args ...any) ([]T, error) {
	return Query[T](ctx, c, q.ToSQL(), args...)
}

// Update writes the mapped columns of record to the rows of table matching
// where. An empty where updates every row. args bind placeholders in where.
func Update[T any](ctx context.Context, c *Client, table string, record T, where string, args ...any) (int64, error) {
	plan, err := planFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return 0, err
	}

	cols, vals := plan.values(reflect.ValueOf(&record).Elem())
	if len(cols) == 0 {
		return 0, fmt.Errorf("%s has no mapped columns", plan.typ)
	}

	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s", table, strings.Join(sets, ", "))
	query += whereClause(where)

	res, err := c.exec(ctx, "update", table, query, append(vals, args...))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateWhere is Update with a condition expression.
func UpdateWhere[T any](ctx context.Context, c *Client, table string, record T, cond condition.Condition, args ...any) (int64, error) {
	return Update(ctx, c, table, record, cond.String(), args...)
}

// Delete removes the rows of table matching where and returns how many
// were removed. An empty where removes every row.
func (c *Client) Delete(ctx context.Context, table, where string, args ...any) (int64, error) {
	res, err := c.exec(ctx, "delete", table, "DELETE FROM "+table+whereClause(where), args)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteWhere is Delete with a condition expression.
func (c *Client) DeleteWhere(ctx context.Context, table string, cond condition.Condition, args ...any) (int64, error) {
	return c.Delete(ctx, table, cond.String(), args...)
}

// DropTable drops each named table if it exists. Every table is attempted.
func (c *Client) DropTable(ctx context.Context, names ...string) error {
	batch := &BatchError{Op: "drop table", Total: len(names)}
	for i, name := range names {
		if _, err := c.exec(ctx, "drop table", name, schema.NewTable(name).DropStatement(), nil); err != nil {
			batch.Failed = append(batch.Failed, &ItemError{Index: i, Err: err})
		}
	}
	return batch.errOrNil()
}

// CreateTable creates each table if it does not exist, in order. It stops
// at the first failure so later tables never reference a missing parent.
func (c *Client) CreateTable(ctx context.Context, tables ...*schema.Table) error {
	for _, t := range tables {
		if _, err := c.exec(ctx, "create table", t.Name(), t.CreateStatement(), nil); err != nil {
			return err
		}
	}
	return nil
}

// ExecSQL runs a statement that returns no rows.
func (c *Client) ExecSQL(ctx context.Context, query string, args ...any) error {
	_, err := c.exec(ctx, "exec", "", query, args)
	return err
}

// Exec runs a statement and reports the number of affected rows.
func (c *Client) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := c.exec(ctx, "exec", "", query, args)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func whereClause(where string) string {
	if where = strings.TrimSpace(where); where == "" {
		return ""
	}
	return " WHERE " + where
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
