package sources

import "conflux"

// Static serves a fixed in-memory tree. Useful for application defaults
// (appended last, lowest priority) and for tests.
type Static struct {
	value *conflux.Value
}

// NewStatic returns a Static source over an existing tree.
func NewStatic(value *conflux.Value) *Static {
	return &Static{value: value}
}

// StaticOf builds a Static source from any JSON-serializable value, e.g.
// a map literal or a defaults struct.
func StaticOf(data any) (*Static, error) {
	value, err := conflux.ValueOf(data)
	if err != nil {
		return nil, err
	}
	return &Static{value: value}, nil
}

// Parse implements conflux.Source.
func (s *Static) Parse(_ *conflux.Value) (*conflux.Value, error) {
	return s.value.Clone(), nil
}

// IsCaseSensitive implements conflux.Source.
func (s *Static) IsCaseSensitive() bool {
	return s.value.IsCaseSensitive()
}
