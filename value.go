package reshape

import (
	"fmt"
	"strconv"
)

// DataType represents the type of data in a column.
type DataType int

const (
	// TypeString represents text data.
	TypeString DataType = iota
	// TypeInt represents integer data.
	TypeInt
	// TypeFloat represents floating-point data.
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// Value is a typed container for cell values.
// It holds the raw value, type information, and a null flag, so that a cell
// can always say what it is without consulting its column.
type Value struct {
	// Raw holds the underlying value. Its Go type follows the DataType:
	// string for TypeString, int64 for TypeInt, float64 for TypeFloat and
	// bool for TypeBool. Raw is nil when IsNull is set.
	Raw any

	// Type indicates the data type of this value.
	Type DataType

	// IsNull indicates whether this value is null/missing.
	IsNull bool
}

// NewValue creates a new Value from a raw value and type.
// A nil raw yields a null value. Narrower Go types are normalized to the
// canonical representation (int -> int64, float32 -> float64).
func NewValue(raw any, dataType DataType) Value {
	if raw == nil {
		return NewNullValue(dataType)
	}

	switch r := raw.(type) {
	case int:
		raw = int64(r)
	case int32:
		raw = int64(r)
	case float32:
		raw = float64(r)
	}

	return Value{
		Raw:  raw,
		Type: dataType,
	}
}

// NewNullValue creates a null value of the specified type.
func NewNullValue(dataType DataType) Value {
	return Value{
		Raw:    nil,
		Type:   dataType,
		IsNull: true,
	}
}

// StringValue creates a TypeString value.
func StringValue(s string) Value { return Value{Raw: s, Type: TypeString} }

// IntValue creates a TypeInt value.
func IntValue(i int64) Value { return Value{Raw: i, Type: TypeInt} }

// FloatValue creates a TypeFloat value.
func FloatValue(f float64) Value { return Value{Raw: f, Type: TypeFloat} }

// BoolValue creates a TypeBool value.
func BoolValue(b bool) Value { return Value{Raw: b, Type: TypeBool} }

// Format converts the value to its string representation.
// Null values format as the empty string.
func (v Value) Format() string {
	if v.IsNull || v.Raw == nil {
		return ""
	}

	switch r := v.Raw.(type) {
	case string:
		return r
	case int64:
		return strconv.FormatInt(r, 10)
	case float64:
		return strconv.FormatFloat(r, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(r)
	default:
		return fmt.Sprintf("%v", r)
	}
}

// AsFloat returns the value as a float64. Integer values widen; text and
// boolean values return ErrTypeMismatch. Null values return ErrTypeMismatch
// as well, callers that tolerate nulls should check IsNull first.
func (v Value) AsFloat() (float64, error) {
	if v.IsNull {
		return 0, fmt.Errorf("%w: null value is not numeric", ErrTypeMismatch)
	}

	switch r := v.Raw.(type) {
	case int64:
		return float64(r), nil
	case float64:
		return r, nil
	default:
		return 0, fmt.Errorf("%w: %s value is not numeric", ErrTypeMismatch, v.Type)
	}
}
