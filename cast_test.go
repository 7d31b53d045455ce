package reshape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/reshape"
)

func TestCastInvertsMelt(t *testing.T) {
	wide := mustTable(t,
		reshape.NewIntColumn("id", []int64{1, 2}),
		reshape.NewIntColumn("a", []int64{10, 20}),
		reshape.NewIntColumn("b", []int64{30, 40}),
	)

	long, err := reshape.Melt(wide, []string{"id"})
	require.NoError(t, err)

	back, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.NoError(t, err)
	assert.True(t, back.Equal(wide), "round trip changed the table: %v", back.ColumnNames())
}

func TestCastRoundTripMultipleIDs(t *testing.T) {
	wide := mustTable(t,
		reshape.NewStringColumn("subject", []string{"s1", "s1", "s2"}),
		reshape.NewStringColumn("group", []string{"g1", "g2", "g1"}),
		reshape.NewFloatColumn("day_1", []float64{1, 2, 3}),
		reshape.NewFloatColumn("day_3", []float64{4, 5, 6}),
	)

	long, err := reshape.Melt(wide, []string{"subject", "group"})
	require.NoError(t, err)

	back, err := reshape.Cast(long, []string{"subject", "group"}, "variable", "value")
	require.NoError(t, err)
	assert.True(t, back.Equal(wide))
}

func TestCastMissingCombination(t *testing.T) {
	long := mustTable(t,
		reshape.NewIntColumn("id", []int64{1, 2}),
		reshape.NewStringColumn("variable", []string{"a", "b"}),
		reshape.NewIntColumn("value", []int64{10, 20}),
	)

	wide, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.NoError(t, err)

	require.Equal(t, []string{"id", "a", "b"}, wide.ColumnNames())
	a, _ := wide.Column("a")
	b, _ := wide.Column("b")
	assert.Equal(t, reshape.IntValue(10), a.Values[0])
	assert.True(t, a.Values[1].IsNull)
	assert.True(t, b.Values[0].IsNull)
	assert.Equal(t, reshape.IntValue(20), b.Values[1])
}

func TestCastFirstSeenOrder(t *testing.T) {
	long := mustTable(t,
		reshape.NewStringColumn("id", []string{"x", "w", "x", "w"}),
		reshape.NewStringColumn("variable", []string{"later", "earlier", "earlier", "later"}),
		reshape.NewIntColumn("value", []int64{1, 2, 3, 4}),
	)

	wide, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.NoError(t, err)

	// Rows follow first-seen identifier order, columns first-seen key order.
	assert.Equal(t, []string{"id", "later", "earlier"}, wide.ColumnNames())
	idCol, _ := wide.Column("id")
	assert.Equal(t, []reshape.Value{
		reshape.StringValue("x"), reshape.StringValue("w"),
	}, idCol.Values)
}

func TestCastDuplicateKey(t *testing.T) {
	long := mustTable(t,
		reshape.NewIntColumn("id", []int64{1, 1}),
		reshape.NewStringColumn("variable", []string{"a", "a"}),
		reshape.NewIntColumn("value", []int64{10, 20}),
	)

	_, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.ErrorIs(t, err, reshape.ErrDuplicateKey)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), "id=1")
}

func TestCastAggregate(t *testing.T) {
	long := mustTable(t,
		reshape.NewIntColumn("id", []int64{1, 1, 2}),
		reshape.NewStringColumn("variable", []string{"a", "a", "a"}),
		reshape.NewIntColumn("value", []int64{10, 20, 5}),
	)

	wide, err := reshape.Cast(long, []string{"id"}, "variable", "value",
		reshape.WithAggregate(reshape.AggMean))
	require.NoError(t, err)

	a, _ := wide.Column("a")
	// Duplicates aggregate to the mean, singletons pass through; the mixed
	// int/float results widen the column to float.
	assert.Equal(t, reshape.TypeFloat, a.Type)
	assert.Equal(t, reshape.FloatValue(15), a.Values[0])
	assert.Equal(t, reshape.FloatValue(5), a.Values[1])
}

func TestCastAggregateError(t *testing.T) {
	long := mustTable(t,
		reshape.NewIntColumn("id", []int64{1, 1}),
		reshape.NewStringColumn("variable", []string{"a", "a"}),
		reshape.NewStringColumn("value", []string{"x", "y"}),
	)

	_, err := reshape.Cast(long, []string{"id"}, "variable", "value",
		reshape.WithAggregate(reshape.AggMean))
	require.ErrorIs(t, err, reshape.ErrTypeMismatch)
}

func TestCastValidation(t *testing.T) {
	long := mustTable(t,
		reshape.NewIntColumn("id", []int64{1}),
		reshape.NewStringColumn("variable", []string{"a"}),
		reshape.NewIntColumn("value", []int64{10}),
	)

	_, err := reshape.Cast(long, []string{"missing"}, "variable", "value")
	require.ErrorIs(t, err, reshape.ErrColumnNotFound)

	_, err = reshape.Cast(long, []string{"id"}, "missing", "value")
	require.ErrorIs(t, err, reshape.ErrColumnNotFound)

	_, err = reshape.Cast(long, []string{"id"}, "variable", "missing")
	require.ErrorIs(t, err, reshape.ErrColumnNotFound)

	_, err = reshape.Cast(long, []string{"id"}, "variable", "variable")
	require.ErrorIs(t, err, reshape.ErrAmbiguousColumn)

	_, err = reshape.Cast(long, []string{"variable"}, "variable", "value")
	require.ErrorIs(t, err, reshape.ErrAmbiguousColumn)

	_, err = reshape.Cast(long, []string{"value"}, "variable", "value")
	require.ErrorIs(t, err, reshape.ErrAmbiguousColumn)
}

func TestCastNameCollision(t *testing.T) {
	long := mustTable(t,
		reshape.NewStringColumn("id", []string{"1"}),
		reshape.NewStringColumn("variable", []string{"id"}),
		reshape.NewIntColumn("value", []int64{10}),
	)

	_, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.ErrorIs(t, err, reshape.ErrNameCollision)
}

func TestCastNullKey(t *testing.T) {
	long := mustTable(t,
		reshape.NewIntColumn("id", []int64{1}),
		reshape.NewColumn("variable", reshape.TypeString, []reshape.Value{
			reshape.NewNullValue(reshape.TypeString),
		}),
		reshape.NewIntColumn("value", []int64{10}),
	)

	_, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.ErrorIs(t, err, reshape.ErrTypeMismatch)
}

func TestCastNullAndEmptyIdentifiersDistinct(t *testing.T) {
	long := mustTable(t,
		reshape.NewColumn("id", reshape.TypeString, []reshape.Value{
			reshape.StringValue(""), reshape.NewNullValue(reshape.TypeString),
		}),
		reshape.NewStringColumn("variable", []string{"a", "a"}),
		reshape.NewIntColumn("value", []int64{1, 2}),
	)

	wide, err := reshape.Cast(long, []string{"id"}, "variable", "value")
	require.NoError(t, err)
	assert.Equal(t, 2, wide.NumRows(), "empty text and null must group separately")
}

func TestSpread(t *testing.T) {
	long := mustTable(t,
		reshape.NewStringColumn("subject", []string{"s1", "s1", "s2", "s2"}),
		reshape.NewStringColumn("time", []string{"day_1", "day_3", "day_1", "day_3"}),
		reshape.NewFloatColumn("score", []float64{1, 2, 3, 4}),
	)

	wide, err := reshape.Spread(long, "time", "score")
	require.NoError(t, err)

	want := mustTable(t,
		reshape.NewStringColumn("subject", []string{"s1", "s2"}),
		reshape.NewFloatColumn("day_1", []float64{1, 3}),
		reshape.NewFloatColumn("day_3", []float64{2, 4}),
	)
	assert.True(t, wide.Equal(want))

	_, err = reshape.Spread(long, "time", "time")
	require.ErrorIs(t, err, reshape.ErrAmbiguousColumn)
	_, err = reshape.Spread(long, "missing", "score")
	require.ErrorIs(t, err, reshape.ErrColumnNotFound)
}
