package native

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	loads, releases int
}

func (c *counter) load() []string {
	c.loads++
	return []string{"a.png", "b.png"}
}

func (c *counter) release([]string) {
	c.releases++
}

func TestLoadAndRelease(t *testing.T) {
	var c counter
	got := LoadAndRelease(c.load, c.release, func(l []string) int { return len(l) })
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.loads)
	assert.Equal(t, c.loads, c.releases)
}

func TestLoadAndReleaseConsumePanics(t *testing.T) {
	var c counter
	errCopy := errors.New("copy failed")

	require.PanicsWithError(t, errCopy.Error(), func() {
		LoadAndRelease(c.load, c.release, func([]string) int { panic(errCopy) })
	})
	assert.Equal(t, 1, c.loads)
	assert.Equal(t, c.loads, c.releases)
}
