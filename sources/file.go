package sources

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"conflux"
)

var (
	// ErrMissingPath indicates that neither DefaultPath nor PathOption
	// produced a config file path.
	ErrMissingPath = errors.New("no configuration file path resolved")
	// ErrNotRegularFile indicates the resolved path is a directory, device
	// or other non-regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// Decoder parses one configuration file format into a tree.
type Decoder interface {
	Decode(r io.Reader) (any, error)
}

// File reads a configuration file through a format Decoder.
//
// The file path is resolved per parse: when PathOption is set and the
// accumulated tree (built from earlier, higher-priority sources) holds a
// string at that key path, it overrides DefaultPath. This lets a
// command-line flag or environment variable select the file.
//
// File is not memoized; every Reload re-reads the file.
type File struct {
	// DefaultPath is used when PathOption is unset or absent from the
	// accumulated tree.
	DefaultPath string

	// PathOption is a key path into the accumulated tree whose string
	// value, if present, overrides DefaultPath.
	PathOption string

	// KeysDelimiter splits PathOption into key segments. Default is
	// conflux.DefaultKeysDelimiter.
	KeysDelimiter string

	// IgnoreMissing turns an unresolved path or a non-existent file into
	// an empty tree instead of an error. Unreadable or malformed files
	// still fail.
	IgnoreMissing bool

	// CaseInsensitive marks keys from this file as case-insensitive.
	CaseInsensitive bool

	// Decoder parses the file contents. Required.
	Decoder Decoder
}

// NewJSONFile returns a File reading JSON from path.
func NewJSONFile(path string) *File {
	return &File{DefaultPath: path, Decoder: JSONDecoder{}}
}

// NewYAMLFile returns a File reading YAML from path.
func NewYAMLFile(path string) *File {
	return &File{DefaultPath: path, Decoder: YAMLDecoder{}}
}

// NewTOMLFile returns a File reading TOML from path.
func NewTOMLFile(path string) *File {
	return &File{DefaultPath: path, Decoder: TOMLDecoder{}}
}

// NewJSON5File returns a File reading JSON5 from path.
func NewJSON5File(path string) *File {
	return &File{DefaultPath: path, Decoder: JSON5Decoder{}}
}

// Parse implements conflux.Source.
func (f *File) Parse(accumulated *conflux.Value) (*conflux.Value, error) {
	path, err := f.resolvePath(accumulated)
	if err != nil {
		return nil, err
	}
	if path == "" {
		if f.IgnoreMissing {
			return conflux.NewValueWithCase(f.IsCaseSensitive()), nil
		}
		return nil, ErrMissingPath
	}

	file, err := openRegularFile(path)
	if err != nil {
		if f.IgnoreMissing && errors.Is(err, fs.ErrNotExist) {
			return conflux.NewValueWithCase(f.IsCaseSensitive()), nil
		}
		return nil, err
	}
	defer file.Close()

	tree, err := f.Decoder.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return conflux.ValueOfWithCase(tree, f.IsCaseSensitive())
}

// IsCaseSensitive implements conflux.Source.
func (f *File) IsCaseSensitive() bool {
	return !f.CaseInsensitive
}

func (f *File) resolvePath(accumulated *conflux.Value) (string, error) {
	path := f.DefaultPath
	if f.PathOption == "" {
		return path, nil
	}

	delim := f.KeysDelimiter
	if delim == "" {
		delim = conflux.DefaultKeysDelimiter
	}
	var override string
	found, err := accumulated.GetByKeyPathDelim(&override, f.PathOption, delim)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path option %q: %w", f.PathOption, err)
	}
	if found && override != "" {
		path = override
	}
	return path, nil
}

// openRegularFile opens path for reading, rejecting directories and other
// non-regular files up front.
func openRegularFile(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return os.Open(path)
}
