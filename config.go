package conflux

import (
	"bytes"
	"fmt"
)

// Config holds an ordered list of sources and the tree merged from them.
// It is built with Builder and fully rebuilt by Reload; a failed reload
// leaves the previous tree and digest untouched.
//
// Config is not safe for concurrent use during Reload.
type Config struct {
	sources       []Source
	value         *Value
	caseSensitive bool
	digest        []byte
	sealSuffix    string
	keysDelimiter string
}

// Reload re-parses and re-merges all sources.
//
// The fold starts from an empty, case-sensitive tree. Each source is
// invoked in append order with the accumulated tree, and its output is
// merged with the accumulated tree winning key conflicts, so the earliest
// appended source has the highest priority and later sources only fill
// gaps. After all sources succeed the tree is sealed with the configured
// suffix (when one is set) and the content digest recomputed; only then
// is the stored state replaced. Any source failure aborts the reload with
// a *SourceError carrying the 1-based source position.
func (c *Config) Reload() error {
	accumulated := NewValue()
	for i, source := range c.sources {
		value, err := source.Parse(accumulated)
		if err != nil {
			return &SourceError{Position: i + 1, Err: err}
		}
		accumulated = value.MergeWithCase(accumulated, c.caseSensitive)
	}

	if c.sealSuffix != "" {
		accumulated.Seal(c.sealSuffix)
	}
	c.digest = digest(accumulated.Bytes())
	c.value = accumulated
	return nil
}

// Hash returns the content digest of the merged tree in textual form:
// "BLAKE2b: <lowercase-hex>".
func (c *Config) Hash() string {
	return fmt.Sprintf("%s: %x", HashName, c.digest)
}

// HashBytes returns the raw content digest.
func (c *Config) HashBytes() []byte {
	return append([]byte(nil), c.digest...)
}

// Equal reports whether both configs hold structurally identical merged
// trees. Equality is defined solely by digest comparison, so configs
// built from different source compositions compare equal when they merge
// to the same tree.
func (c *Config) Equal(other *Config) bool {
	return bytes.Equal(c.digest, other.digest)
}

// Compare orders configs by byte-wise digest comparison.
func (c *Config) Compare(other *Config) int {
	return bytes.Compare(c.digest, other.digest)
}

// Value returns the merged tree. The tree is live: mutating it through
// SetByKeys moves it to SealStateMutated like any other mutation.
func (c *Config) Value() *Value {
	return c.value
}

// GetByKeys looks up and decodes the value addressed by key segments.
// See Value.GetByKeys.
func (c *Config) GetByKeys(out any, keys ...string) (bool, error) {
	return c.value.GetByKeys(out, keys...)
}

// GetByKeyPath looks up and decodes the value addressed by a key path
// split on the configured keys delimiter.
func (c *Config) GetByKeyPath(out any, path string) (bool, error) {
	return c.value.GetByKeyPathDelim(out, path, c.keysDelimiter)
}

// GetByKeyPathDelim looks up and decodes the value addressed by a key
// path split on an explicit delimiter.
func (c *Config) GetByKeyPathDelim(out any, path, delim string) (bool, error) {
	return c.value.GetByKeyPathDelim(out, path, delim)
}

// Scan decodes the whole merged tree into target, a non-nil pointer to a
// struct or map. Fields map via `json` tags.
func (c *Config) Scan(target any) error {
	return c.value.Decode(target)
}

// Dump renders the config for human consumption: the digest line followed
// by the masked tree.
func (c *Config) Dump() string {
	return "Config: " + c.Hash() + "\n" + c.value.String()
}
