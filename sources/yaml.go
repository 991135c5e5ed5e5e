package sources

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder parses YAML documents.
type YAMLDecoder struct{}

// Decode implements Decoder. An empty input decodes to an empty tree.
func (YAMLDecoder) Decode(r io.Reader) (any, error) {
	var tree any
	if err := yaml.NewDecoder(r).Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if tree == nil {
		return map[string]any{}, nil
	}
	return tree, nil
}
