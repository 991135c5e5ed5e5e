// Package sources provides ready-made configuration sources for the
// conflux builder: format-specific file sources (JSON, YAML, TOML, JSON5),
// environment variables, command-line arguments, in-memory values and
// filesystem discovery of config files.
package sources
