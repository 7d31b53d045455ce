package reshape

import (
	"fmt"
	"strings"

	"github.com/tablewise/reshape/internal/groupindex"
)

type castOptions struct {
	aggregate Aggregator
}

// CastOption configures how Cast handles its input.
type CastOption func(*castOptions)

// WithAggregate sets the function used to combine multiple values observed
// for one (identifier tuple, key) pair. Without it such duplicates fail
// with ErrDuplicateKey.
func WithAggregate(fn Aggregator) CastOption {
	return func(o *castOptions) { o.aggregate = fn }
}

// Cast converts a long table back to wide format. Rows are grouped by their
// identifier tuple; each distinct value of the key column becomes an output
// column whose cells come from the value column. Output rows follow the
// first-seen order of identifier tuples, output columns are the identifier
// columns followed by the key-derived columns in first-seen key order.
//
// A group with no row for a key yields a null cell. A group with several
// rows for a key yields the configured aggregate, or ErrDuplicateKey when
// none is configured. Each generated column's type is inferred from its
// cells under the same coercion policy as Melt, so casting the output of
// Melt restores the original column types.
//
// Returns ErrColumnNotFound for unknown columns, ErrAmbiguousColumn when
// ids, key and value overlap, and ErrNameCollision when a key-derived
// column name matches an identifier column.
func Cast(t *Table, ids []string, key, value string, opts ...CastOption) (*Table, error) {
	var o castOptions
	for _, opt := range opts {
		opt(&o)
	}

	idSet, err := roleSet(t, ids)
	if err != nil {
		return nil, err
	}
	if !t.HasColumn(key) {
		return nil, wrapColumn(ErrColumnNotFound, key)
	}
	if !t.HasColumn(value) {
		return nil, wrapColumn(ErrColumnNotFound, value)
	}
	if key == value {
		return nil, wrapColumn(ErrAmbiguousColumn, key)
	}
	if _, ok := idSet[key]; ok {
		return nil, wrapColumn(ErrAmbiguousColumn, key)
	}
	if _, ok := idSet[value]; ok {
		return nil, wrapColumn(ErrAmbiguousColumn, value)
	}

	keyCol, _ := t.Column(key)
	valueCol, _ := t.Column(value)
	idCols := make([]Column, len(ids))
	for i, id := range ids {
		idCols[i], _ = t.Column(id)
	}

	groups := groupindex.New()
	var keyOrder []string
	keySeen := make(map[string]bool)
	cells := make(map[string]map[string][]Value)

	for row := 0; row < t.NumRows(); row++ {
		kv := keyCol.Values[row]
		if kv.IsNull {
			return nil, fmt.Errorf("%w: null key in column %q at row %d", ErrTypeMismatch, key, row)
		}
		keyName := kv.Format()
		if !keySeen[keyName] {
			keySeen[keyName] = true
			keyOrder = append(keyOrder, keyName)
		}

		parts := make([]string, len(idCols))
		for i, col := range idCols {
			parts[i] = encodeCell(col.Values[row])
		}
		gk := groupindex.EncodeKey(parts)
		groups.Add(gk, row)

		byKey := cells[gk]
		if byKey == nil {
			byKey = make(map[string][]Value)
			cells[gk] = byKey
		}
		byKey[keyName] = append(byKey[keyName], valueCol.Values[row])
	}

	for _, keyName := range keyOrder {
		if _, ok := idSet[keyName]; ok {
			return nil, wrapColumn(ErrNameCollision, keyName)
		}
	}

	out := make([]Column, 0, len(ids)+len(keyOrder))
	for i, id := range ids {
		values := make([]Value, 0, groups.Len())
		for _, gk := range groups.Keys() {
			first := groups.Rows(gk)[0]
			values = append(values, idCols[i].Values[first])
		}
		out = append(out, Column{Name: id, Type: idCols[i].Type, Values: values})
	}

	for _, keyName := range keyOrder {
		values := make([]Value, 0, groups.Len())
		for _, gk := range groups.Keys() {
			group := cells[gk][keyName]
			switch {
			case len(group) == 0:
				values = append(values, NewNullValue(valueCol.Type))
			case len(group) == 1:
				values = append(values, group[0])
			default:
				if o.aggregate == nil {
					first := groups.Rows(gk)[0]
					return nil, fmt.Errorf("%w: %d values for key %q in group %s",
						ErrDuplicateKey, len(group), keyName, describeGroup(idCols, first))
				}
				v, err := o.aggregate(group)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
		}

		colType := inferColumnType(values, valueCol.Type)
		for i, v := range values {
			values[i] = coerce(v, colType)
		}
		out = append(out, Column{Name: keyName, Type: colType, Values: values})
	}

	return NewTable(out...)
}

// Spread casts using every column other than key and value as an
// identifier. It is the complement-selecting variant of Cast.
func Spread(t *Table, key, value string, opts ...CastOption) (*Table, error) {
	if !t.HasColumn(key) {
		return nil, wrapColumn(ErrColumnNotFound, key)
	}
	if !t.HasColumn(value) {
		return nil, wrapColumn(ErrColumnNotFound, value)
	}
	if key == value {
		return nil, wrapColumn(ErrAmbiguousColumn, key)
	}

	ids := make([]string, 0, t.NumCols()-2)
	for _, col := range t.cols {
		if col.Name != key && col.Name != value {
			ids = append(ids, col.Name)
		}
	}
	return Cast(t, ids, key, value, opts...)
}

// encodeCell renders a cell for group-key encoding, keeping null distinct
// from empty text.
func encodeCell(v Value) string {
	if v.IsNull {
		return "n"
	}
	return "v" + v.Format()
}

// describeGroup renders an identifier tuple for error messages.
func describeGroup(idCols []Column, row int) string {
	if len(idCols) == 0 {
		return "()"
	}
	parts := make([]string, len(idCols))
	for i, col := range idCols {
		parts[i] = col.Name + "=" + col.Values[row].Format()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
