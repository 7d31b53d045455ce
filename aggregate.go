package reshape

import "strings"

// Aggregator combines the multiset of values observed for one
// (identifier tuple, key) pair into a single cell. Cast applies it only
// when a group holds more than one value for a key.
type Aggregator func(values []Value) (Value, error)

// numericInputs extracts the non-null values as float64.
// Text or boolean cells fail with ErrTypeMismatch.
func numericInputs(values []Value) ([]float64, error) {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsNull {
			continue
		}
		f, err := v.AsFloat()
		if err != nil {
			return nil, err
		}
		nums = append(nums, f)
	}
	return nums, nil
}

// AggMean averages the non-null numeric values. All-null input yields null.
func AggMean(values []Value) (Value, error) {
	nums, err := numericInputs(values)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return NewNullValue(TypeFloat), nil
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return FloatValue(sum / float64(len(nums))), nil
}

// AggSum sums the non-null numeric values. All-null input yields null.
func AggSum(values []Value) (Value, error) {
	nums, err := numericInputs(values)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return NewNullValue(TypeFloat), nil
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return FloatValue(sum), nil
}

// AggMin returns the smallest non-null numeric value.
func AggMin(values []Value) (Value, error) {
	nums, err := numericInputs(values)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return NewNullValue(TypeFloat), nil
	}
	min := nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
	}
	return FloatValue(min), nil
}

// AggMax returns the largest non-null numeric value.
func AggMax(values []Value) (Value, error) {
	nums, err := numericInputs(values)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return NewNullValue(TypeFloat), nil
	}
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return FloatValue(max), nil
}

// AggCount counts all values in the group, nulls included.
func AggCount(values []Value) (Value, error) {
	return IntValue(int64(len(values))), nil
}

// AggFirst keeps the first value in row order.
func AggFirst(values []Value) (Value, error) {
	return values[0], nil
}

// AggLast keeps the last value in row order.
func AggLast(values []Value) (Value, error) {
	return values[len(values)-1], nil
}

// AggConcat returns an aggregator joining the formatted non-null values
// with sep, in row order.
func AggConcat(sep string) Aggregator {
	return func(values []Value) (Value, error) {
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if v.IsNull {
				continue
			}
			parts = append(parts, v.Format())
		}
		if len(parts) == 0 {
			return NewNullValue(TypeString), nil
		}
		return StringValue(strings.Join(parts, sep)), nil
	}
}
