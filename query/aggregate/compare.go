package aggregate

import "github.com/tplib/comfort/query/condition"

// SumIs is an alias for SumEq.
func SumIs[N Number](col string, value N) condition.Condition { return SumEq(col, value) }

// SumEq checks that the sum of col equals value.
func SumEq[N Number](col string, value N) condition.Condition {
	return compare(FuncSum, col, "=", value)
}

// SumGt checks that the sum of col is greater than value.
func SumGt[N Number](col string, value N) condition.Condition {
	return compare(FuncSum, col, ">", value)
}

// SumLt checks that the sum of col is less than value.
func SumLt[N Number](col string, value N) condition.Condition {
	return compare(FuncSum, col, "<", value)
}

// SumGe checks that the sum of col is greater than or equal to value.
func SumGe[N Number](col string, value N) condition.Condition {
	return compare(FuncSum, col, ">=", value)
}

// SumLe checks that the sum of col is less than or equal to value.
func SumLe[N Number](col string, value N) condition.Condition {
	return compare(FuncSum, col, "<=", value)
}

// CountIs is an alias for CountEq.
func CountIs[N Number](col string, value N) condition.Condition { return CountEq(col, value) }

// CountEq checks that the count of col equals value.
func CountEq[N Number](col string, value N) condition.Condition {
	return compare(FuncCount, col, "=", value)
}

// CountGt checks that the count of col is greater than value.
func CountGt[N Number](col string, value N) condition.Condition {
	return compare(FuncCount, col, ">", value)
}

// CountLt checks that the count of col is less than value.
func CountLt[N Number](col string, value N) condition.Condition {
	return compare(FuncCount, col, "<", value)
}

// CountGe checks that the count of col is greater than or equal to value.
func CountGe[N Number](col string, value N) condition.Condition {
	return compare(FuncCount, col, ">=", value)
}

// CountLe checks that the count of col is less than or equal to value.
func CountLe[N Number](col string, value N) condition.Condition {
	return compare(FuncCount, col, "<=", value)
}

// AvgIs is an alias for AvgEq.
func AvgIs[N Number](col string, value N) condition.Condition { return AvgEq(col, value) }

// AvgEq checks that the average of col equals value.
func AvgEq[N Number](col string, value N) condition.Condition {
	return compare(FuncAvg, col, "=", value)
}

// AvgGt checks that the average of col is greater than value.
func AvgGt[N Number](col string, value N) condition.Condition {
	return compare(FuncAvg, col, ">", value)
}

// AvgLt checks that the average of col is less than value.
func AvgLt[N Number](col string, value N) condition.Condition {
	return compare(FuncAvg, col, "<", value)
}

// AvgGe checks that the average of col is greater than or equal to value.
func AvgGe[N Number](col string, value N) condition.Condition {
	return compare(FuncAvg, col, ">=", value)
}

// AvgLe checks that the average of col is less than or equal to value.
func AvgLe[N Number](col string, value N) condition.Condition {
	return compare(FuncAvg, col, "<=", value)
}

// MinIs is an alias for MinEq.
func MinIs[N Number](col string, value N) condition.Condition { return MinEq(col, value) }

// MinEq checks that the minimum of col equals value.
func MinEq[N Number](col string, value N) condition.Condition {
	return compare(FuncMin, col, "=", value)
}

// MinGt checks that the minimum of col is greater than value.
func MinGt[N Number](col string, value N) condition.Condition {
	return compare(FuncMin, col, ">", value)
}

// MinLt checks that the minimum of col is less than value.
func MinLt[N Number](col string, value N) condition.Condition {
	return compare(FuncMin, col, "<", value)
}

// MinGe checks that the minimum of col is greater than or equal to value.
func MinGe[N Number](col string, value N) condition.Condition {
	return compare(FuncMin, col, ">=", value)
}

// MinLe checks that the minimum of col is less than or equal to value.
func MinLe[N Number](col string, value N) condition.Condition {
	return compare(FuncMin, col, "<=", value)
}

// MaxIs is an alias for MaxEq.
func MaxIs[N Number](col string, value N) condition.Condition { return MaxEq(col, value) }

// MaxEq checks that the maximum of col equals value.
func MaxEq[N Number](col string, value N) condition.Condition {
	return compare(FuncMax, col, "=", value)
}

// MaxGt checks that the maximum of col is greater than value.
func MaxGt[N Number](col string, value N) condition.Condition {
	return compare(FuncMax, col, ">", value)
}

// MaxLt checks that the maximum of col is less than value.
func MaxLt[N Number](col string, value N) condition.Condition {
	return compare(FuncMax, col, "<", value)
}

// MaxGe checks that the maximum of col is greater than or equal to value.
func MaxGe[N Number](col string, value N) condition.Condition {
	return compare(FuncMax, col, ">=", value)
}

// MaxLe checks that the maximum of col is less than or equal to value.
func MaxLe[N Number](col string, value N) condition.Condition {
	return compare(FuncMax, col, "<=", value)
}
