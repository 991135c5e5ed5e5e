package conflux

import (
	"encoding/json"
	"strings"
)

// MaskString replaces sealed values in rendered output.
const MaskString = "********"

// SealState tracks the secret-masking state of a Value.
//
// Sealing only affects human-facing rendering (String); programmatic
// access, merging, equality and hashing always see the real data. Once a
// sealed tree is structurally mutated it renders as an empty object, so
// a stale shadow can never leak.
type SealState int

const (
	// SealStateUnsealed renders the tree as-is.
	SealStateUnsealed SealState = iota
	// SealStateSealed renders the tree with sealed values masked.
	SealStateSealed
	// SealStateMutated renders an empty object: the tree was mutated
	// after sealing and the shadow has been discarded.
	SealStateMutated
)

func (s SealState) String() string {
	switch s {
	case SealStateSealed:
		return "sealed"
	case SealStateMutated:
		return "mutated"
	default:
		return "unsealed"
	}
}

// Seal marks secret values for masked rendering and returns the
// receiver. A map key whose (case-normalized) name ends with suffix is
// renamed in the live tree by stripping the suffix, and its stripped name
// is recorded in a shadow overlay holding the mask. Only map keys are
// matched; arrays and scalars without a suffixed key are untouched. A
// suffixed key holding a nested map masks that whole subtree.
//
// Seal is a no-op when the tree is already sealed and unmutated; calling
// it after a mutation recomputes the shadow from the current tree. An
// empty suffix seals with no shadow and renders as an unconditionally
// empty object, a fail-safe rather than an error.
func (v *Value) Seal(suffix string) *Value {
	if v.state == SealStateSealed {
		return v
	}

	v.shadow = nil
	v.state = SealStateSealed
	v.maskAll = suffix == ""
	if v.maskAll {
		return v
	}

	if m, ok := v.data.(map[string]any); ok {
		v.data, v.shadow = sealMap(m, suffix, v.caseSensitive)
	}
	return v
}

// IsSealed reports whether the tree is sealed and unmutated.
func (v *Value) IsSealed() bool {
	return v.state == SealStateSealed
}

// SealedState returns the current seal state.
func (v *Value) SealedState() SealState {
	return v.state
}

// markMutated records a structural change: a sealed tree moves to
// SealStateMutated and the shadow is dropped.
func (v *Value) markMutated() {
	if v.state == SealStateSealed {
		v.state = SealStateMutated
	}
	v.shadow = nil
}

// String renders the tree as pretty-printed JSON with 2-space indentation
// and sealed values masked. A mutated-after-seal tree and an
// empty-suffix seal both render "{}".
func (v *Value) String() string {
	b, err := json.MarshalIndent(v.renderTree(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// renderTree returns the tree as seen by human-facing output.
func (v *Value) renderTree() any {
	if v.state == SealStateMutated || (v.state == SealStateSealed && v.maskAll) {
		return map[string]any{}
	}
	if v.shadow != nil {
		if m, ok := v.data.(map[string]any); ok {
			return overlayShadow(cloneMap(m), v.shadow)
		}
	}
	return v.data
}

// sealMap strips suffix from matching keys and builds the shadow overlay.
// The returned shadow is nil when nothing matched.
func sealMap(m map[string]any, suffix string, caseSensitive bool) (map[string]any, map[string]any) {
	result := make(map[string]any, len(m))
	shadow := map[string]any{}
	suffix = normalizeKey(suffix, caseSensitive)

	for key, val := range m {
		key = normalizeKey(key, caseSensitive)

		var childShadow map[string]any
		if nested, ok := val.(map[string]any); ok {
			val, childShadow = sealMap(nested, suffix, caseSensitive)
		}

		stripped := trimSuffixAll(key, suffix)
		result[stripped] = val
		if len(stripped) != len(key) {
			shadow[stripped] = MaskString
		} else if childShadow != nil {
			shadow[stripped] = childShadow
		}
	}

	if len(shadow) == 0 {
		return result, nil
	}
	return result, shadow
}

// overlayShadow substitutes shadow entries into dst, recursively for
// nested shadows. dst is mutated and returned.
func overlayShadow(dst, shadow map[string]any) map[string]any {
	for key, sv := range shadow {
		if nested, ok := sv.(map[string]any); ok {
			if dv, ok := dst[key].(map[string]any); ok {
				dst[key] = overlayShadow(dv, nested)
				continue
			}
		}
		dst[key] = sv
	}
	return dst
}

// trimSuffixAll removes every trailing occurrence of suffix.
func trimSuffixAll(s, suffix string) string {
	if suffix == "" {
		return s
	}
	for strings.HasSuffix(s, suffix) {
		s = s[:len(s)-len(suffix)]
	}
	return s
}
