// Package script compiles user-supplied aggregate functions from Go source
// text at runtime, for use with reshape.Cast.
package script

import (
	"errors"
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/tablewise/reshape"
)

// ErrCompile is returned when aggregate source text does not compile or
// does not evaluate to the expected function type.
var ErrCompile = errors.New("aggregate compilation failed")

// CompileAggregate interprets src, a Go function literal of type
//
//	func(values []float64) float64
//
// and wraps it into a reshape.Aggregator. The math package is imported
// before evaluation, so literals may call math functions directly. The
// resulting aggregator feeds the non-null numeric cells of a group to the
// compiled function; non-numeric cells fail with reshape.ErrTypeMismatch
// and an all-null group yields a null cell.
func CompileAggregate(src string) (reshape.Aggregator, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	if _, err := i.Eval(`import "math"`); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	// Parenthesize so yaegi parses src as a function literal expression;
	// evaluated bare, it is not returned as a func value.
	v, err := i.Eval("(" + src + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	fn, ok := v.Interface().(func([]float64) float64)
	if !ok {
		return nil, fmt.Errorf("%w: source must evaluate to func([]float64) float64, got %T",
			ErrCompile, v.Interface())
	}

	return func(values []reshape.Value) (reshape.Value, error) {
		nums := make([]float64, 0, len(values))
		for _, v := range values {
			if v.IsNull {
				continue
			}
			f, err := v.AsFloat()
			if err != nil {
				return reshape.Value{}, err
			}
			nums = append(nums, f)
		}
		if len(nums) == 0 {
			return reshape.NewNullValue(reshape.TypeFloat), nil
		}
		return reshape.FloatValue(fn(nums)), nil
	}, nil
}
