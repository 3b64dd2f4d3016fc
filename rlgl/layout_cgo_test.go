//go:build cgo

package rlgl

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorganca/raylib/internal/layoutprobe"
)

func TestLayoutMatchesC(t *testing.T) {
	for _, want := range layouts {
		t.Run(want.Name, func(t *testing.T) {
			got, ok := layoutprobe.Lookup(want.Name)
			require.True(t, ok, "no C layout for %s", want.Name)

			assert.Equal(t, got.Size, want.Size, "size")
			assert.Equal(t, got.Align, want.Align, "alignment")
			require.Len(t, want.Fields, len(got.Fields), "field count")

			for i, f := range want.Fields {
				c := got.Fields[i]
				assert.True(t, strings.EqualFold(c.Name, f.Name), "field %d: C %s, Go %s", i, c.Name, f.Name)
				assert.Equal(t, c.Offset, f.Offset, "%s offset", f.Name)
			}
		})
	}
}

func TestRenderBatchRoundTrip(t *testing.T) {
	var batch RenderBatch
	layoutprobe.FillRenderBatch(unsafe.Pointer(&batch))

	assert.Equal(t, int32(1), batch.BufferCount)
	assert.Equal(t, float32(-1), batch.CurrentDepth)

	buffers := batch.BuffersView()
	require.Len(t, buffers, 1)
	assert.Equal(t, int32(DefaultBatchBufferElements), buffers[0].ElementCount)
	assert.Equal(t, uint32(5), buffers[0].VaoID)
	assert.Equal(t, [5]uint32{1, 2, 3, 4, 5}, buffers[0].VboID)

	draws := batch.DrawsView()
	require.Len(t, draws, 3)
	for i, d := range draws {
		assert.Equal(t, DrawCall{Mode: Quads, VertexCount: int32(4 * i), TextureID: 1}, d)
	}

	assert.True(t, layoutprobe.CheckRenderBatch(unsafe.Pointer(&batch)))
	batch.DrawCounter++
	assert.False(t, layoutprobe.CheckRenderBatch(unsafe.Pointer(&batch)))
}
