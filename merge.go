package conflux

// Merge merges other into the receiver using the receiver's case policy
// and returns the receiver. See MergeWithCase.
func (v *Value) Merge(other *Value) *Value {
	return v.MergeWithCase(other, v.caseSensitive)
}

// MergeWithCase merges other into the receiver under the given target
// case policy and returns the receiver.
//
// If the receiver's case policy disagrees with the target, its keys are
// first rewritten (an irreversible lowering when moving to insensitive).
// When both trees are maps, keys are merged recursively with other's
// values winning conflicts; keys present only on either side are kept.
// When either tree is not a map, the result is wholly other's value.
//
// The case rewrite and a map-to-map merge are structural changes and
// move a sealed receiver to SealStateMutated; the wholesale non-map
// replacement deliberately is not.
func (v *Value) MergeWithCase(other *Value, caseSensitive bool) *Value {
	changed := v.normalizeCase(caseSensitive)

	dst, dstIsMap := v.data.(map[string]any)
	src, srcIsMap := other.data.(map[string]any)
	if dstIsMap && srcIsMap {
		changed = true
		v.data = mergeMaps(dst, src, v.caseSensitive)
	} else {
		v.data = cloneTree(other.data)
	}

	if changed {
		v.markMutated()
	}
	return v
}

// normalizeCase switches the tree to the target case policy. Moving a
// map tree to case-insensitive rewrites every key to lower case and
// reports a structural change; moving to case-sensitive only flips the
// flag. Non-map trees are left untouched.
func (v *Value) normalizeCase(caseSensitive bool) bool {
	if caseSensitive == v.caseSensitive {
		return false
	}
	if m, ok := v.data.(map[string]any); ok {
		v.caseSensitive = caseSensitive
		if caseSensitive {
			return false
		}
		v.data = lowerTree(m)
		return true
	}
	return false
}

// mergeMaps merges src into dst, key by key. Nested maps present on both
// sides recurse; everything else is replaced by src's value. dst is
// mutated and returned.
func mergeMaps(dst, src map[string]any, caseSensitive bool) map[string]any {
	for key, srcVal := range src {
		key = normalizeKey(key, caseSensitive)
		dstMap, dstOK := dst[key].(map[string]any)
		srcMap, srcOK := srcVal.(map[string]any)
		if dstOK && srcOK {
			dst[key] = mergeMaps(dstMap, srcMap, caseSensitive)
			continue
		}
		if srcOK && !caseSensitive {
			dst[key] = lowerTree(srcMap)
			continue
		}
		dst[key] = cloneTree(srcVal)
	}
	return dst
}
