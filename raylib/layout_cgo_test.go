//go:build cgo

package raylib

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
				assert.Equal(t, c.Size, f.Size, "%s size", f.Name)
			}
		})
	}
}

func TestRoundTripThroughC(t *testing.T) {
	t.Run("NPatchInfo", func(t *testing.T) {
		var info NPatchInfo
		layoutprobe.FillNPatchInfo(unsafe.Pointer(&info))
		assert.Equal(t, NPatchInfo{
			Source: Rectangle{1, 2, 3, 4},
			Left:   5,
			Top:    6,
			Right:  7,
			Bottom: 8,
			Layout: NPatchThreePatchHorizontal,
		}, info)
		assert.True(t, layoutprobe.CheckNPatchInfo(unsafe.Pointer(&info)))

		info.Bottom = 9
		assert.False(t, layoutprobe.CheckNPatchInfo(unsafe.Pointer(&info)))
	})

	t.Run("Shader", func(t *testing.T) {
		var shader Shader
		layoutprobe.FillShader(unsafe.Pointer(&shader))
		assert.Equal(t, uint32(7), shader.ID)

		locs := shader.LocsView()
		require.Len(t, locs, MaxShaderLocations)
		for i, loc := range locs {
			assert.Equal(t, int32(2*i), loc)
		}
		assert.True(t, layoutprobe.CheckShader(unsafe.Pointer(&shader)))
	})

	t.Run("Camera3D", func(t *testing.T) {
		want := Camera3D{
			Position:   Vector3{10, 10, 10},
			Up:         Vector3{0, 1, 0},
			Fovy:       45,
			Projection: CameraOrthographic,
		}
		assert.True(t, layoutprobe.CheckCamera3D(unsafe.Pointer(&want)))

		var got Camera
		layoutprobe.FillCamera3D(unsafe.Pointer(&got))
		assert.Equal(t, want, got)
	})

	t.Run("FilePathList", func(t *testing.T) {
		var list FilePathList
		layoutprobe.FillFilePathList(unsafe.Pointer(&list))
		assert.Equal(t, uint32(4), list.Capacity)
		assert.Equal(t, []string{"resources/a.png", "resources/dir/b.txt"}, list.strings())
		assert.True(t, layoutprobe.CheckFilePathList(unsafe.Pointer(&list)))
	})

	t.Run("AutomationEvent", func(t *testing.T) {
		var event AutomationEvent
		layoutprobe.FillAutomationEvent(unsafe.Pointer(&event))
		assert.Equal(t, AutomationEvent{Frame: 60, Type: 3, Params: [4]int32{1, 2, 3, 4}}, event)
		assert.True(t, layoutprobe.CheckAutomationEvent(unsafe.Pointer(&event)))

		list := AutomationEventList{Capacity: 1, Count: 1, Events: &event}
		assert.Equal(t, []AutomationEvent{event}, list.EventsView())
	})
}
