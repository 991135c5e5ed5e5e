package sources

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// typedScalar interprets a raw string value the way a YAML scalar would
// be: "8080" becomes a number, "true" a bool, "null" nil, anything else a
// string. Quoting forces the string interpretation.
func typedScalar(raw string) (any, error) {
	var out any
	if err := yaml.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// isValidKeySegment reports whether s can serve as a single key segment:
// ASCII letters, digits, underscores and dashes, non-empty.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.ContainsRune(s, '.') {
		return false // Segments themselves cannot contain dots
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}
