// Package arrowtable converts reshape tables to and from Apache Arrow
// records, and exports them to Parquet, CSV and JSON.
package arrowtable

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/tablewise/reshape"
)

// ErrUnsupportedType is returned when an Arrow column type has no
// reshape representation.
var ErrUnsupportedType = errors.New("unsupported arrow type")

// arrowType maps a reshape data type to its Arrow counterpart.
func arrowType(dt reshape.DataType) arrow.DataType {
	switch dt {
	case reshape.TypeInt:
		return arrow.PrimitiveTypes.Int64
	case reshape.TypeFloat:
		return arrow.PrimitiveTypes.Float64
	case reshape.TypeBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// ToRecord builds an Arrow record from a table. All fields are nullable;
// null cells become Arrow nulls. The caller owns the returned record and
// must Release it. A nil allocator defaults to the Go allocator.
func ToRecord(t *reshape.Table, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	fields := make([]arrow.Field, t.NumCols())
	for i := 0; i < t.NumCols(); i++ {
		col, err := t.ColumnAt(i)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: col.Name, Type: arrowType(col.Type), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for i := 0; i < t.NumCols(); i++ {
		col, _ := t.ColumnAt(i)
		switch col.Type {
		case reshape.TypeInt:
			fb := b.Field(i).(*array.Int64Builder)
			for _, v := range col.Values {
				if v.IsNull {
					fb.AppendNull()
				} else {
					fb.Append(v.Raw.(int64))
				}
			}
		case reshape.TypeFloat:
			fb := b.Field(i).(*array.Float64Builder)
			for _, v := range col.Values {
				if v.IsNull {
					fb.AppendNull()
				} else {
					fb.Append(v.Raw.(float64))
				}
			}
		case reshape.TypeBool:
			fb := b.Field(i).(*array.BooleanBuilder)
			for _, v := range col.Values {
				if v.IsNull {
					fb.AppendNull()
				} else {
					fb.Append(v.Raw.(bool))
				}
			}
		default:
			fb := b.Field(i).(*array.StringBuilder)
			for _, v := range col.Values {
				if v.IsNull {
					fb.AppendNull()
				} else {
					fb.Append(v.Raw.(string))
				}
			}
		}
	}

	return b.NewRecord(), nil
}

// FromRecord builds a table from an Arrow record. Integer widths fold to
// TypeInt and float widths to TypeFloat; dates, timestamps, decimals and
// binary render to their text form. Nested Arrow types return
// ErrUnsupportedType.
func FromRecord(rec arrow.Record) (*reshape.Table, error) {
	schema := rec.Schema()
	cols := make([]reshape.Column, rec.NumCols())

	for i, col := range rec.Columns() {
		name := schema.Field(i).Name
		converted, err := fromArray(name, col)
		if err != nil {
			return nil, err
		}
		cols[i] = converted
	}

	return reshape.NewTable(cols...)
}

// fromArray converts one Arrow array to a reshape column.
func fromArray(name string, col arrow.Array) (reshape.Column, error) {
	n := col.Len()
	values := make([]reshape.Value, n)

	appendInts := func(get func(int) int64) {
		for pos := 0; pos < n; pos++ {
			if col.IsNull(pos) {
				values[pos] = reshape.NewNullValue(reshape.TypeInt)
			} else {
				values[pos] = reshape.IntValue(get(pos))
			}
		}
	}
	appendFloats := func(get func(int) float64) {
		for pos := 0; pos < n; pos++ {
			if col.IsNull(pos) {
				values[pos] = reshape.NewNullValue(reshape.TypeFloat)
			} else {
				values[pos] = reshape.FloatValue(get(pos))
			}
		}
	}
	appendStrings := func(get func(int) string) {
		for pos := 0; pos < n; pos++ {
			if col.IsNull(pos) {
				values[pos] = reshape.NewNullValue(reshape.TypeString)
			} else {
				values[pos] = reshape.StringValue(get(pos))
			}
		}
	}

	dataType := reshape.TypeString
	switch col.DataType().ID() {
	case arrow.STRING:
		a := col.(*array.String)
		appendStrings(a.Value)

	case arrow.BINARY:
		a := col.(*array.Binary)
		appendStrings(func(pos int) string { return string(a.Value(pos)) })

	case arrow.BOOL:
		a := col.(*array.Boolean)
		dataType = reshape.TypeBool
		for pos := 0; pos < n; pos++ {
			if col.IsNull(pos) {
				values[pos] = reshape.NewNullValue(reshape.TypeBool)
			} else {
				values[pos] = reshape.BoolValue(a.Value(pos))
			}
		}

	case arrow.INT8:
		a := col.(*array.Int8)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.INT16:
		a := col.(*array.Int16)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.INT32:
		a := col.(*array.Int32)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.INT64:
		a := col.(*array.Int64)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return a.Value(pos) })

	case arrow.UINT8:
		a := col.(*array.Uint8)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.UINT16:
		a := col.(*array.Uint16)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.UINT32:
		a := col.(*array.Uint32)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.UINT64:
		a := col.(*array.Uint64)
		dataType = reshape.TypeInt
		appendInts(func(pos int) int64 { return int64(a.Value(pos)) })

	case arrow.FLOAT16:
		a := col.(*array.Float16)
		dataType = reshape.TypeFloat
		appendFloats(func(pos int) float64 { return float64(a.Value(pos).Float32()) })

	case arrow.FLOAT32:
		a := col.(*array.Float32)
		dataType = reshape.TypeFloat
		appendFloats(func(pos int) float64 { return float64(a.Value(pos)) })

	case arrow.FLOAT64:
		a := col.(*array.Float64)
		dataType = reshape.TypeFloat
		appendFloats(a.Value)

	case arrow.DATE32:
		a := col.(*array.Date32)
		appendStrings(func(pos int) string { return a.Value(pos).ToTime().Format("2006-01-02") })

	case arrow.DATE64:
		a := col.(*array.Date64)
		appendStrings(func(pos int) string { return a.Value(pos).ToTime().Format("2006-01-02") })

	case arrow.TIMESTAMP:
		a := col.(*array.Timestamp)
		appendStrings(func(pos int) string {
			return a.Value(pos).ToTime(arrow.Nanosecond).Format("2006-01-02 15:04:05.999999999")
		})

	case arrow.DECIMAL128:
		a := col.(*array.Decimal128)
		appendStrings(func(pos int) string { return a.Value(pos).BigInt().String() })

	default:
		return reshape.Column{}, fmt.Errorf("%w: %s", ErrUnsupportedType, col.DataType())
	}

	return reshape.NewColumn(name, dataType, values), nil
}
