package conflux

import "fmt"

// MergeCase selects the key case policy used when merging sources.
type MergeCase int

const (
	// MergeCaseAuto resolves to case-sensitive unless at least one source
	// is registered and every registered source declares itself
	// case-insensitive.
	MergeCaseAuto MergeCase = iota
	// MergeCaseSensitive enforces case-sensitive merging.
	MergeCaseSensitive
	// MergeCaseInsensitive enforces case-insensitive merging.
	MergeCaseInsensitive
)

// ValidatorFunc validates a fully loaded *Config and returns an error if
// validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for assembling a Config.
type Builder struct {
	sources        []Source
	sealSuffix     string
	keysDelimiter  string
	mergeCase      MergeCase
	allInsensitive bool
	validators     []ValidatorFunc
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{
		keysDelimiter:  DefaultKeysDelimiter,
		allInsensitive: true,
	}
}

// AppendSource appends a source. The first appended source has the
// highest priority during merge; the last one has the lowest.
func (b *Builder) AppendSource(source Source) *Builder {
	b.allInsensitive = b.allInsensitive && !source.IsCaseSensitive()
	b.sources = append(b.sources, source)
	return b
}

// WithSealSuffix sets the key suffix marking secret values, which are
// masked in rendered output. Unset means nothing is sealed.
func (b *Builder) WithSealSuffix(suffix string) *Builder {
	b.sealSuffix = suffix
	return b
}

// WithKeysDelimiter sets the key level delimiter used by the config's
// key-path accessors. Default is DefaultKeysDelimiter.
func (b *Builder) WithKeysDelimiter(delim string) *Builder {
	b.keysDelimiter = delim
	return b
}

// WithMergeCase sets the merge case policy. Default is MergeCaseAuto.
func (b *Builder) WithMergeCase(mc MergeCase) *Builder {
	b.mergeCase = mc
	return b
}

// WithValidator adds a validation function executed after each successful
// load, in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Load parses all appended sources, merges them in append order and
// returns the resulting Config.
func (b *Builder) Load() (*Config, error) {
	caseSensitive := true
	switch b.mergeCase {
	case MergeCaseSensitive:
		caseSensitive = true
	case MergeCaseInsensitive:
		caseSensitive = false
	case MergeCaseAuto:
		if len(b.sources) > 0 && b.allInsensitive {
			caseSensitive = false
		}
	}

	cfg := &Config{
		sources:       b.sources,
		value:         NewValue(),
		caseSensitive: caseSensitive,
		sealSuffix:    b.sealSuffix,
		keysDelimiter: b.keysDelimiter,
	}
	if err := cfg.Reload(); err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadOne loads a Config from a single source with default options.
func LoadOne(source Source) (*Config, error) {
	return NewBuilder().AppendSource(source).Load()
}

// LoadFrom loads a Config from sources in the given order with default
// options.
func LoadFrom(sources ...Source) (*Config, error) {
	b := NewBuilder()
	for _, source := range sources {
		b.AppendSource(source)
	}
	return b.Load()
}
