package reshape

// commonType resolves the coercion lattice used when values of several
// source types must share one column: a single type keeps itself, a mix of
// numeric types widens to float, and any other mix is rendered as text.
// This is the documented value-column policy of Melt; coercing a numeric
// column into a text mix loses its numeric identity, so callers that need
// exact round trips should melt columns of one type.
func commonType(types []DataType) DataType {
	if len(types) == 0 {
		return TypeString
	}

	first := types[0]
	same := true
	numeric := true
	for _, dt := range types {
		if dt != first {
			same = false
		}
		if dt != TypeInt && dt != TypeFloat {
			numeric = false
		}
	}

	if same {
		return first
	}
	if numeric {
		return TypeFloat
	}
	return TypeString
}

// coerce converts a value to the target type under the commonType policy.
// Nulls stay null under every policy.
func coerce(v Value, target DataType) Value {
	if v.IsNull {
		return NewNullValue(target)
	}
	if v.Type == target {
		return v
	}

	switch target {
	case TypeFloat:
		// commonType only picks float for all-numeric sources.
		f, _ := v.AsFloat()
		return FloatValue(f)
	case TypeString:
		return StringValue(v.Format())
	default:
		return v
	}
}

// inferColumnType derives a column type from its non-null cells, falling
// back when every cell is null.
func inferColumnType(values []Value, fallback DataType) DataType {
	var types []DataType
	for _, v := range values {
		if !v.IsNull {
			types = append(types, v.Type)
		}
	}
	if len(types) == 0 {
		return fallback
	}
	return commonType(types)
}
