// FILE: lixenwraith/conf/load_test.go
package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadFile tests flattening of the three supported formats into string
// properties
func TestLoadFile(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		path := writeTempFile(t, "app.toml", `
timeout = "30s"

[server]
host = "localhost"
port = 8080
debug = true
`)
		props, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"timeout":      "30s",
			"server.host":  "localhost",
			"server.port":  "8080",
			"server.debug": "true",
		}, props)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeTempFile(t, "app.json",
			`{"server": {"host": "localhost", "port": 8080}, "ratio": 0.5}`)
		props, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "localhost", props["server.host"])
		assert.Equal(t, "8080", props["server.port"])
		// json.Number preserves the literal
		assert.Equal(t, "0.5", props["ratio"])
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeTempFile(t, "app.yaml", `
server:
  host: localhost
  port: 8080
timeout: 30s
`)
		props, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "localhost", props["server.host"])
		assert.Equal(t, "8080", props["server.port"])
		assert.Equal(t, "30s", props["timeout"])
	})

	t.Run("FormatFromContent", func(t *testing.T) {
		path := writeTempFile(t, "app.config", `{"a": 1}`)
		props, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1", props["a"])
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("MalformedTOML", func(t *testing.T) {
		path := writeTempFile(t, "bad.toml", "this is = = not toml")
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

// TestNewFromFile tests the file-to-store convenience constructor
func TestNewFromFile(t *testing.T) {
	path := writeTempFile(t, "app.toml", `
[client]
timeout = "2m"
`)
	cfg, err := NewFromFile(path, Options{})
	require.NoError(t, err)

	ms, err := cfg.DurationMs(NewEntry("client.timeout", "30s"))
	require.NoError(t, err)
	assert.Equal(t, int64(120000), ms)
}
