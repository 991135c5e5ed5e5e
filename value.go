package conflux

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// DefaultKeysDelimiter is the default separator between key levels in a
// key path string (e.g. "logger:host").
const DefaultKeysDelimiter = ":"

// Value is a recursive JSON-like configuration tree. The variants are
// nil, bool, json.Number, string, []any and map[string]any; any Go value
// put into a tree is normalized to that shape first.
//
// A Value carries a fixed key case policy: when case-insensitive, every
// key is lowered on insert and lookup. It also carries a seal state used
// to mask secret values in human-facing output (see Seal); sealing never
// affects programmatic access, merging, equality or hashing.
//
// Value is not safe for concurrent mutation.
type Value struct {
	data          any
	shadow        map[string]any
	state         SealState
	maskAll       bool
	caseSensitive bool
}

// NewValue returns an empty, case-sensitive tree (an empty map).
func NewValue() *Value {
	return NewValueWithCase(true)
}

// NewValueWithCase returns an empty tree with the given key case policy.
func NewValueWithCase(caseSensitive bool) *Value {
	return &Value{
		data:          map[string]any{},
		caseSensitive: caseSensitive,
	}
}

// ValueOf builds a case-sensitive tree from any JSON-serializable value.
func ValueOf(value any) (*Value, error) {
	return ValueOfWithCase(value, true)
}

// ValueOfWithCase builds a tree from any JSON-serializable value with the
// given key case policy.
func ValueOfWithCase(value any, caseSensitive bool) (*Value, error) {
	v := &Value{caseSensitive: caseSensitive}
	tree, err := v.normalizedTree(value)
	if err != nil {
		return nil, err
	}
	v.data = tree
	return v, nil
}

// IsCaseSensitive reports whether key names are case-sensitive.
func (v *Value) IsCaseSensitive() bool {
	return v.caseSensitive
}

// Clone returns a deep copy, including the seal state and shadow.
func (v *Value) Clone() *Value {
	var shadow map[string]any
	if v.shadow != nil {
		shadow = cloneMap(v.shadow)
	}
	return &Value{
		data:          cloneTree(v.data),
		shadow:        shadow,
		state:         v.state,
		maskAll:       v.maskAll,
		caseSensitive: v.caseSensitive,
	}
}

// Equal reports structural equality of the underlying trees. Seal state
// and case policy are ignored.
func (v *Value) Equal(other *Value) bool {
	return reflect.DeepEqual(v.data, other.data)
}

// Lookup walks the tree by key segments and returns the raw node. An
// empty segment list addresses the whole tree. The second result is false
// when any segment is missing or a non-terminal node is not a map.
// The returned node is live; callers that mutate it bypass the seal
// state machine, use SetByKeys instead.
func (v *Value) Lookup(keys ...string) (any, bool) {
	current := v.data
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[normalizeKey(key, v.caseSensitive)]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetByKeys looks up the node addressed by the key segments and decodes
// it into out (a non-nil pointer). It returns false when the path does
// not exist; a stored shape incompatible with out is reported as an
// ErrDecode-wrapped error, not as missing.
func (v *Value) GetByKeys(out any, keys ...string) (bool, error) {
	raw, ok := v.Lookup(keys...)
	if !ok {
		return false, nil
	}
	if err := decodeValue(cloneTree(raw), out); err != nil {
		return true, err
	}
	return true, nil
}

// GetByKeyPath is GetByKeyPathDelim with DefaultKeysDelimiter.
func (v *Value) GetByKeyPath(out any, path string) (bool, error) {
	return v.GetByKeyPathDelim(out, path, DefaultKeysDelimiter)
}

// GetByKeyPathDelim splits path on delim and delegates to GetByKeys.
// An empty delim fails with ErrEmptyDelimiter even when path is empty;
// an empty path addresses the whole tree.
func (v *Value) GetByKeyPathDelim(out any, path, delim string) (bool, error) {
	keys, err := splitKeyPath(path, delim)
	if err != nil {
		return false, err
	}
	return v.GetByKeys(out, keys...)
}

// Decode deserializes the whole tree into out.
func (v *Value) Decode(out any) error {
	return decodeValue(cloneTree(v.data), out)
}

// SetByKeys stores value at the location addressed by the key segments,
// creating intermediate maps as needed. An empty segment list replaces
// the whole tree. It returns the previous value at that location, or nil
// if there was none. A non-terminal segment addressing a non-map node
// fails with ErrNotMap. Every successful set counts as a structural
// mutation for the seal state machine.
func (v *Value) SetByKeys(keys []string, value any) (*Value, error) {
	prev, err := v.setByKeys(keys, value)
	if err != nil {
		return nil, err
	}
	v.markMutated()
	return prev, nil
}

func (v *Value) setByKeys(keys []string, value any) (*Value, error) {
	tree, err := v.normalizedTree(value)
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		prev := v.Clone()
		v.data = tree
		return prev, nil
	}

	current, ok := v.data.(map[string]any)
	if !ok {
		return nil, ErrNotMap
	}
	for i, key := range keys {
		key = normalizeKey(key, v.caseSensitive)
		if i == len(keys)-1 {
			old, existed := current[key]
			current[key] = tree
			if !existed {
				return nil, nil
			}
			return &Value{data: old, caseSensitive: v.caseSensitive}, nil
		}

		next, exists := current[key]
		if !exists {
			m := map[string]any{}
			current[key] = m
			current = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, ErrNotMap
		}
		current = m
	}
	return nil, nil // unreachable
}

// SetByKeyPath is SetByKeyPathDelim with DefaultKeysDelimiter.
func (v *Value) SetByKeyPath(path string, value any) (*Value, error) {
	return v.SetByKeyPathDelim(path, DefaultKeysDelimiter, value)
}

// SetByKeyPathDelim splits path on delim and delegates to SetByKeys,
// with the same empty-delimiter and empty-path rules as the getter.
func (v *Value) SetByKeyPathDelim(path, delim string, value any) (*Value, error) {
	keys, err := splitKeyPath(path, delim)
	if err != nil {
		return nil, err
	}
	return v.SetByKeys(keys, value)
}

// Bytes returns the canonical compact serialization of the tree: JSON
// with lexicographically ordered keys. It is stable across runs and is
// the input to content hashing.
func (v *Value) Bytes() []byte {
	b, err := json.Marshal(v.data)
	if err != nil {
		return nil
	}
	return b
}

// MarshalJSON serializes the real (unmasked) tree.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data)
}

// UnmarshalJSON replaces the tree with the decoded document. The result
// is case-sensitive and unsealed.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return err
	}
	*v = Value{data: tree, caseSensitive: true}
	return nil
}

// normalizedTree converts value to canonical tree form, lowering map keys
// when the receiver is case-insensitive.
func (v *Value) normalizedTree(value any) (any, error) {
	tree, err := toTree(value)
	if err != nil {
		return nil, err
	}
	if m, ok := tree.(map[string]any); ok && !v.caseSensitive {
		return lowerTree(m), nil
	}
	return tree, nil
}

// toTree normalizes any JSON-serializable value into canonical tree form
// via a JSON round-trip that preserves number precision.
func toTree(value any) (any, error) {
	if v, ok := value.(*Value); ok {
		return cloneTree(v.data), nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("failed to normalize value: %w", err)
	}
	return tree, nil
}
