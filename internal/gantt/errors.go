package gantt

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the input record set.
// It is fatal and raised before any row is processed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input schema: missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a field value that could not be parsed. All parse
// errors are fatal: the run aborts and no partial chart is produced.
// Row is the 1-based position of the offending record.
type ParseError struct {
	Field string
	Value string
	Row   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: field %s: cannot parse %q", e.Row, e.Field, e.Value)
}

// AsSchemaError unwraps err as a *SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	ok := errors.As(err, &se)
	return se, ok
}

// AsParseError unwraps err as a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	ok := errors.As(err, &pe)
	return pe, ok
}
