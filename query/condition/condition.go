// Package condition provides composable SQL condition expressions.
package condition

import "strings"

// Condition is an immutable left/center/right triple that renders a SQL
// boolean or scalar fragment.
//
// Any slot may be empty. A condition with only center set renders as a bare
// fragment, which is how aggregate output and parenthesized groups are
// carried around.
type Condition struct {
	left   string
	center string
	right  string
}

// New creates a condition from all three slots.
func New(left, center, right string) Condition {
	return Condition{left: left, center: center, right: right}
}

// Pair creates a condition whose left and right flank an empty center.
func Pair(left, right string) Condition {
	return Condition{left: left, right: right}
}

// Fragment wraps an already complete SQL fragment.
func Fragment(sql string) Condition {
	return Condition{center: sql}
}

// Left returns the left slot.
func (c Condition) Left() string { return c.left }

// Center returns the center slot.
func (c Condition) Center() string { return c.center }

// Right returns the right slot.
func (c Condition) Right() string { return c.right }

// IsZero reports whether all slots are empty.
func (c Condition) IsZero() bool {
	return c.left == "" && c.center == "" && c.right == ""
}

// String renders the non-empty slots separated by single spaces.
func (c Condition) String() string {
	parts := make([]string, 0, 3)
	for _, s := range [...]string{c.left, c.center, c.right} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// And links c and other with a logical AND.
func (c Condition) And(other Condition) Condition {
	return New(c.String(), "AND", other.String())
}

// Or links c and other with a logical OR.
func (c Condition) Or(other Condition) Condition {
	return New(c.String(), "OR", other.String())
}

// Eq compares the rendered condition for equality with v.
func (c Condition) Eq(v Operand) Condition { return Eq(c.String(), v) }

// Neq compares the rendered condition for inequality with v.
func (c Condition) Neq(v Operand) Condition { return Neq(c.String(), v) }

// Greater checks that the rendered condition is greater than v.
func (c Condition) Greater(v Operand) Condition { return Greater(c.String(), v) }

// GreaterEq checks that the rendered condition is greater than or equal to v.
func (c Condition) GreaterEq(v Operand) Condition { return GreaterEq(c.String(), v) }

// Less checks that the rendered condition is less than v.
func (c Condition) Less(v Operand) Condition { return Less(c.String(), v) }

// LessEq checks that the rendered condition is less than or equal to v.
func (c Condition) LessEq(v Operand) Condition { return LessEq(c.String(), v) }

// Strings renders each condition, in order.
func Strings(conds ...Condition) []string {
	out := make([]string, len(conds))
	for i, c := range conds {
		out[i] = c.String()
	}
	return out
}
