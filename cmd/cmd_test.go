package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorganca/raylib/envconfig"
	"github.com/jmorganca/raylib/internal/native"
	"github.com/jmorganca/raylib/raylib"
)

// rows splits tablewriter output into whitespace separated cells.
func rows(s string) [][]string {
	var out [][]string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		out = append(out, strings.Fields(line))
	}
	return out
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var b bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&b)
	cli.SetErr(&b)
	cli.SetArgs(args)
	err := cli.Execute()
	return b.String(), err
}

func TestWriteReports(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		var b bytes.Buffer
		err := writeReports(&b, []native.Report{
			{Table: "raylib", Bound: 3},
			{Table: "rlgl", Bound: 2},
		}, true)
		require.NoError(t, err)

		if diff := cmp.Diff([][]string{
			{"TABLE", "SYMBOLS", "BOUND", "MISSING"},
			{"raylib", "3", "3", "0"},
			{"rlgl", "2", "2", "0"},
		}, rows(b.String())); diff != "" {
			t.Errorf("unexpected output (-want +got):\n%s", diff)
		}
	})

	t.Run("missing", func(t *testing.T) {
		var b bytes.Buffer
		err := writeReports(&b, []native.Report{
			{Table: "raylib", Bound: 3, Missing: []string{"GetMouseRay"}},
			{Table: "rlgl", Bound: 1, Missing: []string{"rlSetClipPlanes", "rlGetCullDistanceFar"}},
		}, true)
		require.ErrorIs(t, err, errMissingSymbols)

		if diff := cmp.Diff([][]string{
			{"TABLE", "SYMBOLS", "BOUND", "MISSING"},
			{"raylib", "4", "3", "1"},
			{"rlgl", "3", "1", "2"},
			{},
			{"TABLE", "SYMBOL"},
			{"raylib", "GetMouseRay"},
			{"rlgl", "rlSetClipPlanes"},
			{"rlgl", "rlGetCullDistanceFar"},
		}, rows(b.String())); diff != "" {
			t.Errorf("unexpected output (-want +got):\n%s", diff)
		}
	})

	t.Run("missing summary only", func(t *testing.T) {
		var b bytes.Buffer
		err := writeReports(&b, []native.Report{{Table: "raylib", Bound: 1, Missing: []string{"InitWindow"}}}, false)
		assert.ErrorIs(t, err, errMissingSymbols)
		assert.NotContains(t, b.String(), "InitWindow")
	})
}

func TestSymbolsMissingLibrary(t *testing.T) {
	_, err := execute(t, "symbols", "--library", filepath.Join(t.TempDir(), "libraylib.so"))
	assert.Error(t, err)
	assert.False(t, raylib.Loaded())
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "vector2", "DrawCall")
	require.NoError(t, err)

	if diff := cmp.Diff([][]string{
		{"Vector2", "size", "8", "align", "4"},
		{"FIELD", "OFFSET", "SIZE"},
		{"X", "0", "4"},
		{"Y", "4", "4"},
		{},
		{"DrawCall", "size", "16", "align", "4"},
		{"FIELD", "OFFSET", "SIZE"},
		{"Mode", "0", "4"},
		{"VertexCount", "4", "4"},
		{"VertexAlignment", "8", "4"},
		{"TextureID", "12", "4"},
	}, rows(out)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestLayoutUnknown(t *testing.T) {
	_, err := execute(t, "layout", "Vector5")
	assert.ErrorContains(t, err, `unknown struct "Vector5"`)
}

func TestLayoutAll(t *testing.T) {
	out, err := execute(t, "layout")
	require.NoError(t, err)

	for _, l := range allLayouts() {
		assert.Contains(t, out, l.Name+"    size")
	}
}

func TestEnvCommand(t *testing.T) {
	t.Setenv("RAYLIB_LOG_LEVEL", "warning")
	envconfig.LoadConfig()
	t.Cleanup(envconfig.LoadConfig)

	out, err := execute(t, "env")
	require.NoError(t, err)

	got := rows(out)
	require.Len(t, got, len(envconfig.AsMap())+1)
	assert.Equal(t, []string{"NAME", "VALUE", "DESCRIPTION"}, got[0])
	assert.Contains(t, got, append([]string{"RAYLIB_LOG_LEVEL", "4"}, strings.Fields(envconfig.AsMap()["RAYLIB_LOG_LEVEL"].Description)...))
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("RAYLIB_CONFIG", path)
	envconfig.LoadConfig()
	t.Cleanup(envconfig.LoadConfig)

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Equal(t, "no config file found, searched:\n  "+path+"\n", out)

	out, err = execute(t, "config", "--example")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	envconfig.LoadConfig()

	out, err = execute(t, "config")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "raylib bindings for raylib "+raylib.VersionString+"\n", out)
}

func TestLoadDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Cleanup(envconfig.LoadConfig)

	t.Run("no file", func(t *testing.T) {
		require.NoError(t, LoadDotEnv())
	})

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".raylib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".raylib", ".env"), []byte("RAYLIB_LIBRARY=/opt/raylib/libraylib.so\nRAYLIB_DEBUG=1\n"), 0o644))

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("RAYLIB_DEBUG", "false")
		t.Setenv("RAYLIB_LIBRARY", "")
		os.Unsetenv("RAYLIB_LIBRARY")

		require.NoError(t, LoadDotEnv())
		assert.Equal(t, "/opt/raylib/libraylib.so", envconfig.Library)
		assert.False(t, envconfig.Debug)
	})
}
