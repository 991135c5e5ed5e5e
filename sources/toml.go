package sources

import (
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLDecoder parses TOML documents.
type TOMLDecoder struct{}

// Decode implements Decoder.
func (TOMLDecoder) Decode(r io.Reader) (any, error) {
	tree := map[string]any{}
	if _, err := toml.NewDecoder(r).Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}
