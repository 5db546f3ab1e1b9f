package condition

import "strings"

// Eq checks that col equals v.
func Eq(col string, v Operand) Condition {
	return New(col, "=", v.SQL())
}

// Neq checks that col does not equal v.
func Neq(col string, v Operand) Condition {
	return New(col, "!=", v.SQL())
}

// EqValue checks that col equals value. Unless useRaw is set the value is
// replaced by a placeholder and must be bound at execution time.
func EqValue(col, value string, useRaw bool) Condition {
	return Eq(col, policy(value, useRaw))
}

// NeqValue is the inequality counterpart of EqValue.
func NeqValue(col, value string, useRaw bool) Condition {
	return Neq(col, policy(value, useRaw))
}

// Greater checks that col is greater than v.
func Greater(col string, v Operand) Condition {
	return New(col, ">", v.SQL())
}

// GreaterEq checks that col is greater than or equal to v.
func GreaterEq(col string, v Operand) Condition {
	return New(col, ">=", v.SQL())
}

// Less checks that col is less than v.
func Less(col string, v Operand) Condition {
	return New(col, "<", v.SQL())
}

// LessEq checks that col is less than or equal to v.
func LessEq(col string, v Operand) Condition {
	return New(col, "<=", v.SQL())
}

// Like matches col against pattern. With useRaw the pattern is quoted and
// inlined, otherwise a placeholder is used.
func Like(col, pattern string, useRaw bool) Condition {
	return New(col, "LIKE", likeOperand(pattern, useRaw))
}

// NotLike is the negation of Like.
func NotLike(col, pattern string, useRaw bool) Condition {
	return New(col, "NOT LIKE", likeOperand(pattern, useRaw))
}

func likeOperand(pattern string, useRaw bool) string {
	if useRaw {
		return Quote(pattern)
	}
	return Param.SQL()
}

// Between checks that col lies in the inclusive range [lo, hi].
func Between(col string, lo, hi Operand) Condition {
	return New(col+" BETWEEN", lo.SQL(), "AND "+hi.SQL())
}

// BetweenParams is Between with both bounds bound as placeholders.
func BetweenParams(col string) Condition {
	return Between(col, Param, Param)
}

// IsNull checks that stmt is NULL.
func IsNull(stmt string) Condition {
	return Pair(stmt, "IS NULL")
}

// IsNotNull checks that stmt is not NULL.
func IsNotNull(stmt string) Condition {
	return Pair(stmt, "IS NOT NULL")
}

// InList checks membership in a literal, comma separated value list.
func InList(stmt, values string) Condition {
	return New(stmt, "IN", "("+values+")")
}

// NotInList is the negation of InList.
func NotInList(stmt, values string) Condition {
	return New(stmt, "NOT IN", "("+values+")")
}

// InParams checks membership in n placeholder values.
func InParams(stmt string, n int) Condition {
	return New(stmt, "IN", "("+placeholders(n)+")")
}

// NotInParams is the negation of InParams.
func NotInParams(stmt string, n int) Condition {
	return New(stmt, "NOT IN", "("+placeholders(n)+")")
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// Sub encloses c in parentheses.
func Sub(c Condition) Condition {
	return SubString(c.String())
}

// SubString encloses a raw fragment in parentheses.
func SubString(sql string) Condition {
	return Fragment("(" + strings.TrimSpace(sql) + ")")
}
