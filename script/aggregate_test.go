package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/reshape"
)

func TestCompileAggregate(t *testing.T) {
	agg, err := CompileAggregate(`func(values []float64) float64 {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}`)
	require.NoError(t, err)

	got, err := agg([]reshape.Value{
		reshape.IntValue(10),
		reshape.IntValue(20),
		reshape.NewNullValue(reshape.TypeInt),
	})
	require.NoError(t, err)
	assert.Equal(t, reshape.FloatValue(15), got)
}

func TestCompileAggregateMath(t *testing.T) {
	agg, err := CompileAggregate(`func(values []float64) float64 {
		max := math.Inf(-1)
		for _, v := range values {
			max = math.Max(max, v)
		}
		return max
	}`)
	require.NoError(t, err)

	got, err := agg([]reshape.Value{reshape.FloatValue(1.5), reshape.FloatValue(7)})
	require.NoError(t, err)
	assert.Equal(t, reshape.FloatValue(7), got)
}

func TestCompileAggregateWithCast(t *testing.T) {
	long, err := reshape.NewTable(
		reshape.NewIntColumn("id", []int64{1, 1, 2}),
		reshape.NewStringColumn("variable", []string{"a", "a", "a"}),
		reshape.NewIntColumn("value", []int64{10, 30, 5}),
	)
	require.NoError(t, err)

	agg, err := CompileAggregate(`func(values []float64) float64 {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum
	}`)
	require.NoError(t, err)

	wide, err := reshape.Cast(long, []string{"id"}, "variable", "value",
		reshape.WithAggregate(agg))
	require.NoError(t, err)

	a, err := wide.Column("a")
	require.NoError(t, err)
	assert.Equal(t, reshape.FloatValue(40), a.Values[0])
	assert.Equal(t, reshape.FloatValue(5), a.Values[1])
}

func TestCompileAggregateErrors(t *testing.T) {
	_, err := CompileAggregate(`not go at all`)
	require.ErrorIs(t, err, ErrCompile)

	_, err = CompileAggregate(`func(a int) int { return a }`)
	require.ErrorIs(t, err, ErrCompile)
}

func TestCompiledAggregateRejectsText(t *testing.T) {
	agg, err := CompileAggregate(`func(values []float64) float64 { return 0 }`)
	require.NoError(t, err)

	_, err = agg([]reshape.Value{reshape.StringValue("x")})
	require.ErrorIs(t, err, reshape.ErrTypeMismatch)
}

func TestCompiledAggregateAllNull(t *testing.T) {
	agg, err := CompileAggregate(`func(values []float64) float64 { return 0 }`)
	require.NoError(t, err)

	got, err := agg([]reshape.Value{reshape.NewNullValue(reshape.TypeFloat)})
	require.NoError(t, err)
	assert.True(t, got.IsNull)
}
