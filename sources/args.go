package sources

import (
	"fmt"
	"strings"

	"conflux"
)

// DefaultArgsKeysDelimiter separates nesting levels inside flag names:
// "--logger.host=example.com" addresses "logger:host".
const DefaultArgsKeysDelimiter = "."

// Args reads configuration from command-line arguments.
//
// Supported forms are "--key=value", "--key value" and bare "--flag"
// (which stores true). Keys nest on KeysDelimiter and each segment must
// consist of ASCII letters, digits, underscores and dashes. Values are
// interpreted as YAML scalars, the same way Env treats variable values.
// Non-flag arguments and a bare "--" separator are skipped.
//
// The argument list is parsed once; later Parse calls return clones of
// the first result.
type Args struct {
	// KeysDelimiter separates nesting levels in flag names. Default is
	// DefaultArgsKeysDelimiter.
	KeysDelimiter string

	args   []string
	cached *conflux.Value
}

// NewArgs returns an Args source over the given argument list,
// typically os.Args[1:].
func NewArgs(args []string) *Args {
	return &Args{args: args}
}

// Parse implements conflux.Source.
func (a *Args) Parse(_ *conflux.Value) (*conflux.Value, error) {
	if a.cached != nil {
		return a.cached.Clone(), nil
	}

	delim := a.KeysDelimiter
	if delim == "" {
		delim = DefaultArgsKeysDelimiter
	}

	value := conflux.NewValue()
	i := 0
	for i < len(a.args) {
		arg := a.args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip positional arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" used as a separator
			i++
			continue
		}

		var keyPath string
		var valueStr string

		// Check for "--key=value" format
		if strings.Contains(argContent, "=") {
			parts := strings.SplitN(argContent, "=", 2)
			keyPath = parts[0]
			valueStr = parts[1]
			i++
		} else {
			// Handle "--key value" or "--booleanflag"
			keyPath = argContent
			if i+1 >= len(a.args) || strings.HasPrefix(a.args[i+1], "--") {
				valueStr = "true"
				i++
			} else {
				valueStr = a.args[i+1]
				i += 2
			}
		}

		if keyPath == "" {
			// Skip invalid flags like --=value
			continue
		}

		for _, segment := range strings.Split(keyPath, delim) {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("invalid command-line key segment %q in flag %q", segment, arg)
			}
		}

		typed, err := typedScalar(valueStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value of flag %q: %w", arg, err)
		}
		if _, err := value.SetByKeyPathDelim(keyPath, delim, typed); err != nil {
			return nil, fmt.Errorf("failed to store flag %q: %w", arg, err)
		}
	}

	a.cached = value
	return value.Clone(), nil
}

// IsCaseSensitive implements conflux.Source. Flag names keep their case.
func (a *Args) IsCaseSensitive() bool {
	return true
}
