package sources

import (
	"encoding/json"
	"errors"
	"io"
)

// JSONDecoder parses JSON documents. Numbers are kept as json.Number to
// preserve precision.
type JSONDecoder struct{}

// Decode implements Decoder. An empty input decodes to an empty tree.
func (JSONDecoder) Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return tree, nil
}
