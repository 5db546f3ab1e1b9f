package condition

import (
	"strconv"
	"strings"
)

// Operand is the value side of a comparison.
type Operand interface {
	SQL() string
}

type placeholder struct{}

func (placeholder) SQL() string { return "?" }

// Param is the positional placeholder. Values are bound left to right at
// execution time.
var Param Operand = placeholder{}

// Raw is inlined verbatim. Use it for column references or SQL that is
// already escaped.
type Raw string

// SQL implements Operand.
func (r Raw) SQL() string { return string(r) }

// Text is inlined as a single-quoted string literal.
type Text string

// SQL implements Operand.
func (t Text) SQL() string { return Quote(string(t)) }

// Int is an inlined integer literal.
type Int int64

// SQL implements Operand.
func (i Int) SQL() string { return strconv.FormatInt(int64(i), 10) }

// Float is an inlined floating point literal.
type Float float64

// SQL implements Operand.
func (f Float) SQL() string { return FormatFloat(float64(f)) }

// Quote wraps s in single quotes, doubling embedded quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatFloat renders f in the shortest form that round-trips, keeping a
// decimal point so SQLite treats the literal as REAL.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func policy(value string, useRaw bool) Operand {
	if useRaw {
		return Raw(value)
	}
	return Param
}
