package sources

import (
	"errors"
	"io"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// JSON5Decoder parses JSON5 documents (comments, trailing commas,
// unquoted keys).
type JSON5Decoder struct{}

// Decode implements Decoder. An empty input decodes to an empty tree.
func (JSON5Decoder) Decode(r io.Reader) (any, error) {
	var tree any
	if err := json5.NewDecoder(r).Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return tree, nil
}
