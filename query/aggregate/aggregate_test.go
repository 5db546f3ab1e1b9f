package aggregate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tplib/comfort/query/aggregate"
	"github.com/tplib/comfort/query/condition"
)

func TestBareFunctions(t *testing.T) {
	assert.Equal(t, "SUM( amount )", aggregate.Sum("amount").String())
	assert.Equal(t, "COUNT( id )", aggregate.Count("id").String())
	assert.Equal(t, "COUNT( * )", aggregate.CountAll().String())
	assert.Equal(t, "AVG( price )", aggregate.Avg("price").String())
	assert.Equal(t, "MIN( price )", aggregate.Min("price").String())
	assert.Equal(t, "MAX( price )", aggregate.Max("price").String())
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		cond condition.Condition
		want string
	}{
		{name: "sum gt", cond: aggregate.SumGt("amount", 100), want: "SUM(amount) > 100"},
		{name: "sum is", cond: aggregate.SumIs("amount", 7), want: "SUM(amount) = 7"},
		{name: "sum le float", cond: aggregate.SumLe("amount", 99.5), want: "SUM(amount) <= 99.5"},
		{name: "count eq", cond: aggregate.CountEq("id", 3), want: "COUNT(id) = 3"},
		{name: "count ge", cond: aggregate.CountGe("id", int64(2)), want: "COUNT(id) >= 2"},
		{name: "avg lt", cond: aggregate.AvgLt("score", 2.25), want: "AVG(score) < 2.25"},
		{name: "avg is", cond: aggregate.AvgIs("score", float32(1.5)), want: "AVG(score) = 1.5"},
		{name: "min gt negative", cond: aggregate.MinGt("temp", -4), want: "MIN(temp) > -4"},
		{name: "max le uint", cond: aggregate.MaxLe("size", uint16(512)), want: "MAX(size) <= 512"},
		{name: "max eq", cond: aggregate.MaxEq("size", 1), want: "MAX(size) = 1"},
		{name: "whole float keeps decimal point", cond: aggregate.SumGt("x", 100.0), want: "SUM(x) > 100.0"},
		{name: "float32 shortest form", cond: aggregate.AvgGe("x", float32(0.1)), want: "AVG(x) >= 0.1"},
		{name: "large uint", cond: aggregate.MaxGt("x", uint64(math.MaxUint64)), want: "MAX(x) > 18446744073709551615"},
		{name: "min int64", cond: aggregate.MinLt("x", int64(math.MinInt64)), want: "MIN(x) < -9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.String())
		})
	}
}

type score float64

func TestComparisons_NamedTypes(t *testing.T) {
	assert.Equal(t, "AVG(s) > 0.5", aggregate.AvgGt("s", score(0.5)).String())
	assert.Equal(t, "AVG(s) > 2.0", aggregate.AvgGt("s", score(2)).String())
}

func TestFunc_Of(t *testing.T) {
	assert.Equal(t, "SUM( a.total )", aggregate.FuncSum.Of("a.total").String())

	// bare forms compose with the condition methods
	got := aggregate.Count("id").Greater(condition.Int(5)).String()
	assert.Equal(t, "COUNT( id ) > 5", got)
}
