// Package aggregate builds SQL aggregate function expressions.
//
// The bare forms (Sum, Count, ...) return the function applied to a column and
// can be selected or compared further. The comparison forms (SumGt, CountLe,
// ...) render "FUNC(col) op value" with the value always inlined, which is what
// HAVING clauses usually need.
package aggregate

import (
	"reflect"
	"strconv"

	"github.com/tplib/comfort/query/condition"
)

// Func names an SQL aggregate function.
type Func string

// Supported aggregate functions.
const (
	FuncSum   Func = "SUM"
	FuncCount Func = "COUNT"
	FuncAvg   Func = "AVG"
	FuncMin   Func = "MIN"
	FuncMax   Func = "MAX"
)

// Number is any value an aggregate can be compared against.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Of applies f to col.
func (f Func) Of(col string) condition.Condition {
	return condition.New(string(f)+"(", col, ")")
}

// Sum returns SUM( col ).
func Sum(col string) condition.Condition { return FuncSum.Of(col) }

// Count returns COUNT( col ).
func Count(col string) condition.Condition { return FuncCount.Of(col) }

// CountAll returns COUNT( * ).
func CountAll() condition.Condition { return FuncCount.Of("*") }

// Avg returns AVG( col ).
func Avg(col string) condition.Condition { return FuncAvg.Of(col) }

// Min returns MIN( col ).
func Min(col string) condition.Condition { return FuncMin.Of(col) }

// Max returns MAX( col ).
func Max(col string) condition.Condition { return FuncMax.Of(col) }

// compare renders "FUNC(col) op value" verbatim.
func compare[N Number](f Func, col, op string, value N) condition.Condition {
	return condition.Fragment(string(f) + "(" + col + ") " + op + " " + formatNumber(value))
}

func formatNumber[N Number](value N) string {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32:
		// Go through the shortest 32-bit form so 0.1 stays 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(v.Float(), 'g', -1, 32), 64)
		return condition.FormatFloat(f)
	case reflect.Float64:
		return condition.FormatFloat(v.Float())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return strconv.FormatInt(v.Int(), 10)
	}
}
