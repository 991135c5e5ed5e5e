package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conflux"
)

// TestDiscover tests config file location precedence
func TestDiscover(t *testing.T) {
	t.Run("CLIFlagWins", func(t *testing.T) {
		t.Setenv("MYAPP_CONFIG", "/from/env.toml")

		opts := DefaultDiscoveryOptions("myapp")
		assert.Equal(t, "/from/cli.toml", Discover(opts, []string{"--config", "/from/cli.toml"}))
		assert.Equal(t, "/from/cli.toml", Discover(opts, []string{"--config=/from/cli.toml"}))
	})

	t.Run("EnvVarBeatsSearchPaths", func(t *testing.T) {
		t.Setenv("MYAPP_CONFIG", "/from/env.toml")

		opts := DefaultDiscoveryOptions("myapp")
		assert.Equal(t, "/from/env.toml", Discover(opts, nil))
	})

	t.Run("SearchPaths", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "myapp.yaml")
		require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

		opts := DiscoveryOptions{
			Name:       "myapp",
			Extensions: []string{".toml", ".yaml"},
			Paths:      []string{dir},
		}
		assert.Equal(t, path, Discover(opts, nil))
	})

	t.Run("ExtensionOrderMatters", func(t *testing.T) {
		dir := t.TempDir()
		tomlPath := filepath.Join(dir, "myapp.toml")
		require.NoError(t, os.WriteFile(tomlPath, []byte(""), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "myapp.yaml"), []byte(""), 0644))

		opts := DiscoveryOptions{
			Name:       "myapp",
			Extensions: []string{".toml", ".yaml"},
			Paths:      []string{dir},
		}
		assert.Equal(t, tomlPath, Discover(opts, nil))
	})

	t.Run("NothingFoundIsEmpty", func(t *testing.T) {
		opts := DiscoveryOptions{
			Name:       "definitely-absent",
			Extensions: []string{".toml"},
			Paths:      []string{t.TempDir()},
		}
		assert.Equal(t, "", Discover(opts, nil))
	})
}

// TestDecoderFor tests decoder selection by extension
func TestDecoderFor(t *testing.T) {
	assert.IsType(t, TOMLDecoder{}, DecoderFor("app.toml"))
	assert.IsType(t, TOMLDecoder{}, DecoderFor("app.TML"))
	assert.IsType(t, YAMLDecoder{}, DecoderFor("app.yaml"))
	assert.IsType(t, YAMLDecoder{}, DecoderFor("app.yml"))
	assert.IsType(t, JSON5Decoder{}, DecoderFor("app.json5"))
	assert.IsType(t, JSONDecoder{}, DecoderFor("app.json"))
	assert.IsType(t, JSONDecoder{}, DecoderFor("app.conf"))
	assert.IsType(t, JSONDecoder{}, DecoderFor(""))
}

// TestNewDiscoveredFile tests the discovery-to-source shortcut
func TestNewDiscoveredFile(t *testing.T) {
	t.Run("FoundFileLoads", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "myapp.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: localhost\n"), 0644))

		opts := DiscoveryOptions{
			Name:       "myapp",
			Extensions: []string{".yaml"},
			Paths:      []string{dir},
		}
		src := NewDiscoveredFile(opts, nil)

		value, err := src.Parse(conflux.NewValue())
		require.NoError(t, err)
		assert.JSONEq(t, `{"host":"localhost"}`, string(value.Bytes()))
	})

	t.Run("NothingFoundParsesEmpty", func(t *testing.T) {
		opts := DiscoveryOptions{
			Name:       "definitely-absent",
			Extensions: []string{".toml"},
			Paths:      []string{t.TempDir()},
		}
		src := NewDiscoveredFile(opts, nil)

		value, err := src.Parse(conflux.NewValue())
		require.NoError(t, err)
		assert.Equal(t, "{}", string(value.Bytes()))
	})
}
