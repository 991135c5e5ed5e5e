package sources

import (
	"fmt"
	"os"
	"strings"

	"conflux"
)

// DefaultEnvKeysDelimiter separates nesting levels inside environment
// variable names: "APP_LOGGER__HOST" addresses "logger:host" under the
// "APP_" prefix.
const DefaultEnvKeysDelimiter = "__"

// Env reads configuration from environment variables.
//
// Variables matching the prefix are stripped of it, split into key
// segments on EnvKeysDelimiter and inserted into the tree. Values are
// interpreted as YAML scalars so "8080" and "true" keep their types.
//
// Like a process environment, the result is fixed: the first Parse
// snapshots os.Environ and later calls return clones of that snapshot.
type Env struct {
	// DefaultPrefix is used when PrefixOption is unset or absent from the
	// accumulated tree. Empty means every variable is taken.
	DefaultPrefix string

	// PrefixOption is a key path into the accumulated tree whose string
	// value, if present, overrides DefaultPrefix.
	PrefixOption string

	// KeysDelimiter splits PrefixOption into key segments. Default is
	// conflux.DefaultKeysDelimiter.
	KeysDelimiter string

	// EnvKeysDelimiter separates nesting levels in variable names.
	// Default is DefaultEnvKeysDelimiter.
	EnvKeysDelimiter string

	// CaseSensitive keeps variable-name case. By default names are
	// matched and stored case-insensitively.
	CaseSensitive bool

	cached *conflux.Value
}

// Parse implements conflux.Source.
func (e *Env) Parse(accumulated *conflux.Value) (*conflux.Value, error) {
	if e.cached != nil {
		return e.cached.Clone(), nil
	}

	prefix, err := e.resolvePrefix(accumulated)
	if err != nil {
		return nil, err
	}
	envDelim := e.EnvKeysDelimiter
	if envDelim == "" {
		envDelim = DefaultEnvKeysDelimiter
	}

	value := conflux.NewValueWithCase(e.CaseSensitive)
	for _, entry := range os.Environ() {
		name, raw, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		key, matched := e.stripPrefix(name, prefix)
		if !matched || key == "" {
			continue
		}

		typed, err := typedScalar(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse environment variable %s: %w", name, err)
		}
		if _, err := value.SetByKeyPathDelim(key, envDelim, typed); err != nil {
			return nil, fmt.Errorf("failed to store environment variable %s: %w", name, err)
		}
	}

	e.cached = value
	return value.Clone(), nil
}

// IsCaseSensitive implements conflux.Source.
func (e *Env) IsCaseSensitive() bool {
	return e.CaseSensitive
}

func (e *Env) resolvePrefix(accumulated *conflux.Value) (string, error) {
	prefix := e.DefaultPrefix
	if e.PrefixOption == "" {
		return prefix, nil
	}

	delim := e.KeysDelimiter
	if delim == "" {
		delim = conflux.DefaultKeysDelimiter
	}
	var override string
	found, err := accumulated.GetByKeyPathDelim(&override, e.PrefixOption, delim)
	if err != nil {
		return "", fmt.Errorf("failed to resolve env prefix option %q: %w", e.PrefixOption, err)
	}
	if found && override != "" {
		prefix = override
	}
	return prefix, nil
}

// stripPrefix removes prefix from name, matching case-insensitively
// unless the source is case-sensitive.
func (e *Env) stripPrefix(name, prefix string) (string, bool) {
	if prefix == "" {
		return name, true
	}
	if len(name) < len(prefix) {
		return "", false
	}
	head, tail := name[:len(prefix)], name[len(prefix):]
	if e.CaseSensitive {
		if head != prefix {
			return "", false
		}
	} else if !strings.EqualFold(head, prefix) {
		return "", false
	}
	return tail, true
}
