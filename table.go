// Package reshape provides wide-to-long and long-to-wide reshaping of typed
// in-memory tables.
//
// A Table is an ordered sequence of named columns of equal length. Melt turns
// a wide table into long format (one row per original row and melted column),
// Cast rebuilds a wide table from long format with optional aggregation, and
// Split/Unite break a column apart on a separator or join columns back
// together. Gather and Spread are the complement-selecting variants of Melt
// and Cast.
//
// All operations are pure: they validate their inputs, return a new table and
// never modify the one they were given.
package reshape

// Column is a named, ordered sequence of values of a single type.
type Column struct {
	// Name is the column name, unique within a table.
	Name string

	// Type is the declared element type. Non-null values hold the
	// canonical Go representation for this type.
	Type DataType

	// Values are the cells of the column, in row order.
	Values []Value
}

// NewColumn creates a column from pre-built values.
func NewColumn(name string, dataType DataType, values []Value) Column {
	return Column{Name: name, Type: dataType, Values: values}
}

// NewStringColumn creates a TypeString column from raw strings.
func NewStringColumn(name string, values []string) Column {
	cells := make([]Value, len(values))
	for i, v := range values {
		cells[i] = StringValue(v)
	}
	return Column{Name: name, Type: TypeString, Values: cells}
}

// NewIntColumn creates a TypeInt column from raw integers.
func NewIntColumn(name string, values []int64) Column {
	cells := make([]Value, len(values))
	for i, v := range values {
		cells[i] = IntValue(v)
	}
	return Column{Name: name, Type: TypeInt, Values: cells}
}

// NewFloatColumn creates a TypeFloat column from raw floats.
func NewFloatColumn(name string, values []float64) Column {
	cells := make([]Value, len(values))
	for i, v := range values {
		cells[i] = FloatValue(v)
	}
	return Column{Name: name, Type: TypeFloat, Values: cells}
}

// NewBoolColumn creates a TypeBool column from raw booleans.
func NewBoolColumn(name string, values []bool) Column {
	cells := make([]Value, len(values))
	for i, v := range values {
		cells[i] = BoolValue(v)
	}
	return Column{Name: name, Type: TypeBool, Values: cells}
}

// Len returns the number of cells in the column.
func (c Column) Len() int { return len(c.Values) }

// Table is an ordered collection of equally long, uniquely named columns.
// The zero value is not usable; construct tables with NewTable.
type Table struct {
	cols   []Column
	byName map[string]int
}

// NewTable creates a table from the given columns.
// Returns ErrDuplicateColumn if two columns share a name and
// ErrLengthMismatch if the columns differ in length.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{
		cols:   make([]Column, len(cols)),
		byName: make(map[string]int, len(cols)),
	}

	for i, col := range cols {
		if _, ok := t.byName[col.Name]; ok {
			return nil, wrapColumn(ErrDuplicateColumn, col.Name)
		}
		if i > 0 && col.Len() != cols[0].Len() {
			return nil, wrapColumn(ErrLengthMismatch, col.Name)
		}
		t.cols[i] = col
		t.byName[col.Name] = i
	}

	return t, nil
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the number of columns in the table.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns the column with the given name.
// Returns ErrColumnNotFound if no such column exists.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, wrapColumn(ErrColumnNotFound, name)
	}
	return t.cols[i], nil
}

// ColumnAt returns the column at the given index.
// Returns ErrInvalidColumn if the index is out of range.
func (t *Table) ColumnAt(col int) (Column, error) {
	if col < 0 || col >= len(t.cols) {
		return Column{}, ErrInvalidColumn
	}
	return t.cols[col], nil
}

// Cell returns the value at the specified row and column.
func (t *Table) Cell(row, col int) (Value, error) {
	if col < 0 || col >= len(t.cols) {
		return Value{}, ErrInvalidColumn
	}
	if row < 0 || row >= t.NumRows() {
		return Value{}, ErrInvalidRow
	}
	return t.cols[col].Values[row], nil
}

// Row returns all values for the specified row, in column order.
func (t *Table) Row(row int) ([]Value, error) {
	if row < 0 || row >= t.NumRows() {
		return nil, ErrInvalidRow
	}
	values := make([]Value, len(t.cols))
	for i, col := range t.cols {
		values[i] = col.Values[row]
	}
	return values, nil
}

// Equal reports whether two tables have identical columns in identical
// order, comparing names, types and every cell.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.cols) != len(other.cols) {
		return false
	}
	for i, col := range t.cols {
		o := other.cols[i]
		if col.Name != o.Name || col.Type != o.Type || col.Len() != o.Len() {
			return false
		}
		for j, v := range col.Values {
			if v != o.Values[j] {
				return false
			}
		}
	}
	return true
}
