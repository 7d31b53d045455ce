package reshape

// Default names for the columns Melt generates.
const (
	DefaultKeyName   = "variable"
	DefaultValueName = "value"
)

type meltOptions struct {
	keyName   string
	valueName string
}

// MeltOption configures the columns Melt generates.
type MeltOption func(*meltOptions)

// WithKeyName sets the name of the generated key column.
func WithKeyName(name string) MeltOption {
	return func(o *meltOptions) { o.keyName = name }
}

// WithValueName sets the name of the generated value column.
func WithValueName(name string) MeltOption {
	return func(o *meltOptions) { o.valueName = name }
}

// Melt converts a wide table to long format. Every column not named in ids
// is melted: for each melted column c and each row r the output gains one
// row holding r's identifier values, c's name in the key column and r[c] in
// the value column. Identifier columns keep their original order, followed
// by the key column and the value column. The output has
// NumRows() * (NumCols() - len(ids)) rows.
//
// When the melted columns differ in type, values coerce to a common type:
// a mix of int and float widens to float, any other mix is rendered as its
// text form. Null cells stay null.
//
// Returns ErrColumnNotFound when an id is not a column of t,
// ErrDuplicateColumn when ids name a column twice, and ErrNameCollision
// when the key or value name collides with an identifier column.
func Melt(t *Table, ids []string, opts ...MeltOption) (*Table, error) {
	o := meltOptions{keyName: DefaultKeyName, valueName: DefaultValueName}
	for _, opt := range opts {
		opt(&o)
	}

	idSet, err := roleSet(t, ids)
	if err != nil {
		return nil, err
	}
	if o.keyName == o.valueName {
		return nil, wrapColumn(ErrNameCollision, o.keyName)
	}
	for _, id := range ids {
		if id == o.keyName || id == o.valueName {
			return nil, wrapColumn(ErrNameCollision, id)
		}
	}

	var melted []Column
	for _, col := range t.cols {
		if _, ok := idSet[col.Name]; !ok {
			melted = append(melted, col)
		}
	}

	types := make([]DataType, len(melted))
	for i, col := range melted {
		types[i] = col.Type
	}
	valueType := commonType(types)

	total := t.NumRows() * len(melted)
	out := make([]Column, 0, len(ids)+2)

	// Output rows run column-major over the melted columns, so each
	// identifier column is its original values repeated once per melted
	// column.
	for _, id := range ids {
		src := t.cols[t.byName[id]]
		cells := make([]Value, 0, total)
		for range melted {
			cells = append(cells, src.Values...)
		}
		out = append(out, Column{Name: id, Type: src.Type, Values: cells})
	}

	keys := make([]Value, 0, total)
	values := make([]Value, 0, total)
	for _, col := range melted {
		for _, v := range col.Values {
			keys = append(keys, StringValue(col.Name))
			values = append(values, coerce(v, valueType))
		}
	}
	out = append(out, Column{Name: o.keyName, Type: TypeString, Values: keys})
	out = append(out, Column{Name: o.valueName, Type: valueType, Values: values})

	return NewTable(out...)
}

// Gather melts the named columns, keeping every other column as an
// identifier. It is the complement-selecting variant of Melt: where Melt
// names the columns to keep, Gather names the columns to fold into the
// key/value pair.
func Gather(t *Table, key, value string, columns []string) (*Table, error) {
	set, err := roleSet(t, columns)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, t.NumCols()-len(columns))
	for _, col := range t.cols {
		if _, ok := set[col.Name]; !ok {
			ids = append(ids, col.Name)
		}
	}
	return Melt(t, ids, WithKeyName(key), WithValueName(value))
}

// roleSet validates that names exist in t and are not repeated, returning
// them as a set.
func roleSet(t *Table, names []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !t.HasColumn(name) {
			return nil, wrapColumn(ErrColumnNotFound, name)
		}
		if _, ok := set[name]; ok {
			return nil, wrapColumn(ErrDuplicateColumn, name)
		}
		set[name] = struct{}{}
	}
	return set, nil
}
