package native

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	assert.Equal(t, "raylib.dll", Candidates("windows")[0])
	assert.Equal(t, "libraylib.dylib", Candidates("darwin")[0])
	assert.Equal(t, "libraylib.so", Candidates("linux")[0])
	assert.Equal(t, Candidates("linux"), Candidates("freebsd"))
}

func TestSearch(t *testing.T) {
	empty := t.TempDir()
	dir := t.TempDir()

	// a directory named like the library must not match
	require.NoError(t, os.Mkdir(filepath.Join(empty, "libraylib.so"), 0o755))

	_, err := Search([]string{empty}, "linux")
	require.ErrorIs(t, err, ErrNotFound)

	want := filepath.Join(dir, "libraylib.so.550")
	require.NoError(t, os.WriteFile(want, nil, 0o644))

	got, err := Search([]string{empty, dir}, "linux")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
