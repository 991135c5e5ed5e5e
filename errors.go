package conflux

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDelimiter is returned by the key-path accessors when the
	// delimiter is empty, regardless of the path.
	ErrEmptyDelimiter = errors.New("empty key path delimiter")

	// ErrNotMap is returned when an operation needs to descend through or
	// overwrite a node that is not a map.
	ErrNotMap = errors.New("mapping object expected")

	// ErrDecode wraps failures to deserialize a stored node into the
	// requested type.
	ErrDecode = errors.New("failed to decode value")
)

// SourceError reports a source failure during Config.Reload. Position is
// the 1-based index of the failing source in append order.
type SourceError struct {
	Position int
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %d failed to parse: %v", e.Position, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
