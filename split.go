package reshape

import (
	"fmt"
	"strings"
)

// Split replaces a column with several string columns produced by splitting
// each cell's formatted text on separator. Every cell must split into
// exactly len(into) parts; there is no truncation and no padding. The new
// columns take the position of the split column. Null cells split into
// all-null parts.
//
// Returns ErrColumnNotFound when column does not exist, ErrSplitArity when
// a cell yields the wrong number of parts, ErrDuplicateColumn when into
// repeats a name and ErrNameCollision when a new name matches a remaining
// column.
func Split(t *Table, column, separator string, into []string) (*Table, error) {
	src, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if len(into) == 0 {
		return nil, fmt.Errorf("%w: no target columns for split", ErrSplitArity)
	}

	seen := make(map[string]bool, len(into))
	for _, name := range into {
		if seen[name] {
			return nil, wrapColumn(ErrDuplicateColumn, name)
		}
		seen[name] = true
		if name != column && t.HasColumn(name) {
			return nil, wrapColumn(ErrNameCollision, name)
		}
	}

	parts := make([][]Value, len(into))
	for i := range parts {
		parts[i] = make([]Value, 0, src.Len())
	}

	for row, v := range src.Values {
		if v.IsNull {
			for i := range parts {
				parts[i] = append(parts[i], NewNullValue(TypeString))
			}
			continue
		}

		text := v.Format()
		fields := strings.Split(text, separator)
		if len(fields) != len(into) {
			return nil, fmt.Errorf("%w: %q in column %q row %d split into %d parts, want %d",
				ErrSplitArity, text, column, row, len(fields), len(into))
		}
		for i, f := range fields {
			parts[i] = append(parts[i], StringValue(f))
		}
	}

	out := make([]Column, 0, t.NumCols()-1+len(into))
	for _, col := range t.cols {
		if col.Name != column {
			out = append(out, col)
			continue
		}
		for i, name := range into {
			out = append(out, Column{Name: name, Type: TypeString, Values: parts[i]})
		}
	}
	return NewTable(out...)
}

// Unite is the inverse of Split: it replaces the named columns with one
// string column joining their formatted values with separator, placed at
// the position of the first named column. Null cells join as empty text; a
// row whose united cells are all null yields a null cell.
//
// Returns ErrColumnNotFound for unknown or missing source columns,
// ErrDuplicateColumn when columns repeats a name and ErrNameCollision when
// name matches a column that is not being united.
func Unite(t *Table, columns []string, separator, name string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no source columns for unite", ErrColumnNotFound)
	}
	set, err := roleSet(t, columns)
	if err != nil {
		return nil, err
	}
	for _, col := range t.cols {
		if _, united := set[col.Name]; !united && col.Name == name {
			return nil, wrapColumn(ErrNameCollision, name)
		}
	}

	srcs := make([]Column, len(columns))
	for i, c := range columns {
		srcs[i], _ = t.Column(c)
	}

	joined := make([]Value, t.NumRows())
	for row := range joined {
		allNull := true
		fields := make([]string, len(srcs))
		for i, src := range srcs {
			v := src.Values[row]
			if !v.IsNull {
				allNull = false
			}
			fields[i] = v.Format()
		}
		if allNull {
			joined[row] = NewNullValue(TypeString)
		} else {
			joined[row] = StringValue(strings.Join(fields, separator))
		}
	}

	out := make([]Column, 0, t.NumCols()-len(columns)+1)
	placed := false
	for _, col := range t.cols {
		if _, united := set[col.Name]; united {
			if !placed {
				out = append(out, Column{Name: name, Type: TypeString, Values: joined})
				placed = true
			}
			continue
		}
		out = append(out, col)
	}
	return NewTable(out...)
}
