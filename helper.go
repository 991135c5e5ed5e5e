package conflux

import "strings"

// normalizeKey lowers key when the tree is case-insensitive.
func normalizeKey(key string, caseSensitive bool) string {
	if caseSensitive {
		return key
	}
	return strings.ToLower(key)
}

// splitKeyPath splits a key path into segments. An empty delimiter is an
// error regardless of the path; an empty path addresses the whole tree.
func splitKeyPath(path, delim string) ([]string, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	if path == "" {
		return nil, nil
	}
	return strings.Split(path, delim), nil
}

// lowerTree rewrites every map key to lower case, recursively. Arrays
// are not descended; only map values recurse.
func lowerTree(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for key, val := range m {
		if nested, ok := val.(map[string]any); ok {
			val = lowerTree(nested)
		} else {
			val = cloneTree(val)
		}
		result[strings.ToLower(key)] = val
	}
	return result
}

// cloneTree deep-copies a canonical tree. Scalars are immutable and
// returned as-is.
func cloneTree(tree any) any {
	switch t := tree.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		result := make([]any, len(t))
		for i, v := range t {
			result[i] = cloneTree(v)
		}
		return result
	default:
		return tree
	}
}

func cloneMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for key, val := range m {
		result[key] = cloneTree(val)
	}
	return result
}
