package client

import (
	"context"
	"database/sql"
	"math"
	"strconv"
	"strings"
	"time"
)

// Cursor iterates the rows of a result set and exposes typed, index based
// accessors for the current row. Conversions follow SQLite affinity rules
// loosely: numbers parse from text, text renders from numbers, and NULL reads
// as the zero value.
type Cursor struct {
	rows    *sql.Rows
	columns []string
	values  []any
	ptrs    []any
	err     error
}

// Rows runs a query and returns a cursor over its result set. The caller
// must Close the cursor.
func (c *Client) Rows(ctx context.Context, query string, args ...any) (*Cursor, error) {
	rows, err := c.query(ctx, "query", "", query, args)
	if err != nil {
		return nil, err
	}
	return newCursor(rows)
}

func newCursor(rows *sql.Rows) (*Cursor, error) {
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	cur := &Cursor{
		rows:    rows,
		columns: columns,
		values:  make([]any, len(columns)),
		ptrs:    make([]any, len(columns)),
	}
	for i := range cur.values {
		cur.ptrs[i] = &cur.values[i]
	}
	return cur, nil
}

// Next advances to the next row. It returns false when the rows are
// exhausted or a scan fails; check Err afterwards.
func (cur *Cursor) Next() bool {
	if cur.err != nil || !cur.rows.Next() {
		return false
	}
	if err := cur.rows.Scan(cur.ptrs...); err != nil {
		cur.err = err
		return false
	}
	return true
}

// Err returns the first error met while iterating.
func (cur *Cursor) Err() error {
	if cur.err != nil {
		return cur.err
	}
	return cur.rows.Err()
}

// Close releases the result set.
func (cur *Cursor) Close() error {
	return cur.rows.Close()
}

// Columns returns the result column names.
func (cur *Cursor) Columns() []string {
	return cur.columns
}

// ColumnIndex returns the index of the named column, or -1. An exact match
// wins over a case-insensitive one.
func (cur *Cursor) ColumnIndex(name string) int {
	fallback := -1
	for i, col := range cur.columns {
		if col == name {
			return i
		}
		if fallback < 0 && strings.EqualFold(col, name) {
			fallback = i
		}
	}
	return fallback
}

// HasColumn reports whether the result contains the named column.
func (cur *Cursor) HasColumn(name string) bool {
	return cur.ColumnIndex(name) >= 0
}

func (cur *Cursor) value(i int) any {
	if i < 0 || i >= len(cur.values) {
		return nil
	}
	return cur.values[i]
}

// IsNull reports whether column i is NULL in the current row.
func (cur *Cursor) IsNull(i int) bool {
	return cur.value(i) == nil
}

// Long reads column i as a 64-bit integer.
func (cur *Cursor) Long(i int) int64 {
	return toInt64(cur.value(i))
}

// Int reads column i as a 32-bit integer.
func (cur *Cursor) Int(i int) int32 {
	return int32(cur.Long(i))
}

// Short reads column i as a 16-bit integer.
func (cur *Cursor) Short(i int) int16 {
	return int16(cur.Long(i))
}

// Byte reads column i as a signed 8-bit integer.
func (cur *Cursor) Byte(i int) int8 {
	return int8(cur.Long(i))
}

// Double reads column i as a 64-bit float.
func (cur *Cursor) Double(i int) float64 {
	return toFloat64(cur.value(i))
}

// Float reads column i as a 32-bit float.
func (cur *Cursor) Float(i int) float32 {
	return float32(cur.Double(i))
}

// String reads column i as text.
func (cur *Cursor) String(i int) string {
	return toString(cur.value(i))
}

// Blob reads column i as raw bytes. The slice is a copy.
func (cur *Cursor) Blob(i int) []byte {
	switch v := cur.value(i).(type) {
	case nil:
		return nil
	case []byte:
		return append([]byte{}, v...)
	default:
		return []byte(toString(v))
	}
}

// Bool reads column i as a boolean: any stored integer greater than zero
// is true.
func (cur *Cursor) Bool(i int) bool {
	if b, ok := cur.value(i).(bool); ok {
		return b
	}
	return cur.Long(i) > 0
}

func toInt64(v any) int64 {
	switch v := v.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		return parseInt(string(v))
	case string:
		return parseInt(v)
	case time.Time:
		return v.Unix()
	default:
		return 0
	}
}

func parseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
		return int64(f)
	}
	return 0
}

func toFloat64(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	default:
		return 0
	}
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		return ""
	}
}
