package envconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// keep a config file in the real home directory out of the tests
	os.Setenv("RAYLIB_CONFIG", filepath.Join(os.TempDir(), "raylib-envconfig-test", "missing.toml"))
	LoadConfig()
	os.Exit(m.Run())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("RAYLIB_CONFIG", path)
	t.Cleanup(LoadConfig)
	return path
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
[library]
path = "/opt/raylib/libraylib.so"
search_paths = ["/a", "/b"]

[logging]
debug = true
level = "error"
`)
	t.Setenv("RAYLIB_DEBUG", "")
	t.Setenv("RAYLIB_LIBRARY", "")
	t.Setenv("RAYLIB_LIBRARY_PATH", "")
	t.Setenv("RAYLIB_LOG_LEVEL", "")
	LoadConfig()

	assert.Equal(t, path, ConfigPath())
	assert.Equal(t, "/opt/raylib/libraylib.so", Library)
	assert.Equal(t, []string{"/a", "/b"}, LibraryPath)
	assert.True(t, Debug)
	assert.False(t, Trace)
	assert.Equal(t, 5, LogLevel)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	writeConfig(t, `
[library]
path = "/opt/raylib/libraylib.so"

[logging]
level = "error"
`)
	t.Setenv("RAYLIB_LIBRARY", "/usr/lib/libraylib.so.5")
	t.Setenv("RAYLIB_LOG_LEVEL", "none")
	LoadConfig()

	assert.Equal(t, "/usr/lib/libraylib.so.5", Library)
	assert.Equal(t, 7, LogLevel)
}

func TestConfigFileInvalid(t *testing.T) {
	writeConfig(t, "[library\npath = ")
	t.Setenv("RAYLIB_LIBRARY", "")
	LoadConfig()

	assert.Equal(t, "", ConfigPath())
	assert.Equal(t, "", Library)
}

func TestConfigPaths(t *testing.T) {
	t.Setenv("RAYLIB_CONFIG", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	paths := GetConfigPaths()
	require.NotEmpty(t, paths)
	assert.Contains(t, paths, filepath.Join(home, ".raylib", "config.toml"))

	t.Setenv("RAYLIB_CONFIG", `"/etc/raylib.toml"`)
	assert.Equal(t, []string{"/etc/raylib.toml"}, GetConfigPaths())
}

func TestExampleConfigParses(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(GenerateExampleConfig(), &cfg)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/lib/libraylib.so", cfg.Library.Path)
	assert.Equal(t, "warning", cfg.Logging.Level)
}
