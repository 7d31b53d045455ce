package reshape

import (
	"errors"
	"fmt"
)

// Common errors returned by the reshape package.
var (
	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrColumnNotFound is returned when a column name is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrDuplicateColumn is returned when a table is built with two
	// columns of the same name, or a column is named twice in a role set.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrLengthMismatch is returned when columns of a table differ in length.
	ErrLengthMismatch = errors.New("columns differ in length")

	// ErrAmbiguousColumn is returned when one column is assigned to more
	// than one reshaping role (identifier, key, value).
	ErrAmbiguousColumn = errors.New("column assigned to more than one role")

	// ErrDuplicateKey is returned by Cast when an identifier tuple carries
	// several values for one key and no aggregate function is configured.
	ErrDuplicateKey = errors.New("duplicate value for identifier and key")

	// ErrNameCollision is returned when a generated column name collides
	// with an existing column.
	ErrNameCollision = errors.New("column name collision")

	// ErrSplitArity is returned by Split when a cell does not split into
	// the expected number of parts.
	ErrSplitArity = errors.New("wrong number of parts after split")

	// ErrTypeMismatch is returned when a value has the wrong type for an
	// operation, such as aggregating text cells numerically.
	ErrTypeMismatch = errors.New("type mismatch")
)

// wrapColumn annotates a sentinel error with the offending column name.
func wrapColumn(err error, name string) error {
	return fmt.Errorf("%w: %q", err, name)
}
