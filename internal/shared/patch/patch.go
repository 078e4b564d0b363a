// Package patch builds parameterized partial UPDATE statements from a
// field-to-value map. Column names are only ever taken from a caller-supplied
// allow-list, never from raw request input.
package patch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNoFields is returned when the field map is empty. Call sites decide
	// whether that means "reject the request" or "read the current row".
	ErrNoFields = errors.New("patch: no fields to update")

	// ErrUnknownColumn is returned when a field key is not in the allow-list.
	ErrUnknownColumn = errors.New("patch: column not allowed")
)

// Columns builds an allow-list from the known column names of an entity.
func Columns(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Build constructs a single UPDATE statement touching exactly the supplied
// columns, keyed by idColumn = id, returning the full updated row. Columns
// are emitted in sorted order so output is deterministic. Values are always
// bound as parameters; keys are validated against allowed before being used
// as identifiers.
func Build(
	table, idColumn string,
	id any,
	fields map[string]any,
	allowed map[string]struct{},
) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	cols := make([]string, 0, len(fields))
	for col := range fields {
		if _, ok := allowed[col]; !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		set[i] = col + " = ?"
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = ? RETURNING *",
		table, strings.Join(set, ", "), idColumn,
	)

	return query, args, nil
}
