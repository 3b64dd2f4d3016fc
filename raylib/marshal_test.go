package raylib

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOutNull(t *testing.T) {
	cases := map[string]struct {
		setup func(t *testing.T, ret unsafe.Pointer)
		call  func() string
	}{
		"GetMonitorName": {
			setup: func(t *testing.T, ret unsafe.Pointer) {
				fake(t, &getMonitorName, func(int32) unsafe.Pointer { return ret })
			},
			call: func() string { return GetMonitorName(7) },
		},
		"GetClipboardText": {
			setup: func(t *testing.T, ret unsafe.Pointer) {
				fake(t, &getClipboardText, func() unsafe.Pointer { return ret })
			},
			call: GetClipboardText,
		},
		"GetGamepadName": {
			setup: func(t *testing.T, ret unsafe.Pointer) {
				fake(t, &getGamepadName, func(int32) unsafe.Pointer { return ret })
			},
			call: func() string { return GetGamepadName(3) },
		},
		"GetFileExtension": {
			setup: func(t *testing.T, ret unsafe.Pointer) {
				fake(t, &getFileExtension, func(*byte) unsafe.Pointer { return ret })
			},
			call: func() string { return GetFileExtension("README") },
		},
		"GetWorkingDirectory": {
			setup: func(t *testing.T, ret unsafe.Pointer) {
				fake(t, &getWorkingDirectory, func() unsafe.Pointer { return ret })
			},
			call: GetWorkingDirectory,
		},
		"LoadFileText": {
			setup: func(t *testing.T, ret unsafe.Pointer) {
				fake(t, &loadFileText, func(*byte) unsafe.Pointer { return ret })
				fake(t, &unloadFileText, func(unsafe.Pointer) {})
			},
			call: func() string { return LoadFileText("missing.txt") },
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tc.setup(t, nil)
			assert.Equal(t, "", tc.call())
		})

		t.Run(name+"/value", func(t *testing.T) {
			tc.setup(t, cstr("value"))
			assert.Equal(t, "value", tc.call())
		})
	}
}

// pinCheck records the address a fake binding received and, after forcing
// a collection while the call is still in progress, that it still reads the
// data the caller passed.
type pinCheck struct {
	before, after unsafe.Pointer
	n             int
}

func (c *pinCheck) enter(p unsafe.Pointer, n int) {
	c.before, c.n = p, n
	runtime.GC()
	runtime.GC()
	c.after = p
}

func TestPinnedBufferStable(t *testing.T) {
	t.Run("DrawLineStrip", func(t *testing.T) {
		var c pinCheck
		var seen []Vector2
		fake(t, &drawLineStrip, func(points unsafe.Pointer, pointCount int32, color Color) {
			c.enter(points, int(pointCount))
			seen = append(seen, unsafe.Slice((*Vector2)(points), pointCount)...)
		})

		points := []Vector2{{0, 0}, {10, 0}, {10, 10}}
		DrawLineStrip(points, Maroon)

		assert.Equal(t, unsafe.Pointer(&points[0]), c.before)
		assert.Equal(t, c.before, c.after)
		assert.Equal(t, 3, c.n)
		if diff := cmp.Diff(points, seen); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("SaveFileData", func(t *testing.T) {
		var c pinCheck
		var name string
		var seen []byte
		fake(t, &saveFileData, func(fileName *byte, data unsafe.Pointer, dataSize int32) bool {
			c.enter(data, int(dataSize))
			name = goString(fileName)
			seen = append(seen, unsafe.Slice((*byte)(data), dataSize)...)
			return true
		})

		data := []byte("raylib")
		require.True(t, SaveFileData("out.bin", data))

		assert.Equal(t, unsafe.Pointer(&data[0]), c.before)
		assert.Equal(t, c.before, c.after)
		assert.Equal(t, "out.bin", name)
		assert.Equal(t, data, seen)
	})

	t.Run("SetWindowIcons", func(t *testing.T) {
		var c pinCheck
		fake(t, &setWindowIcons, func(images unsafe.Pointer, count int32) {
			c.enter(images, int(count))
		})

		icons := []Image{{Width: 16, Height: 16}, {Width: 32, Height: 32}}
		SetWindowIcons(icons)

		assert.Equal(t, unsafe.Pointer(&icons[0]), c.before)
		assert.Equal(t, c.before, c.after)
		assert.Equal(t, 2, c.n)
	})

	t.Run("UpdateAudioStream", func(t *testing.T) {
		var c pinCheck
		fake(t, &updateAudioStream, func(stream AudioStream, data unsafe.Pointer, frameCount int32) {
			c.enter(data, int(frameCount))
		})

		stream := AudioStream{SampleRate: 44100, SampleSize: 16, Channels: 2}
		samples := make([]int16, 4096)
		UpdateAudioStream(stream, samples)

		assert.Equal(t, unsafe.Pointer(&samples[0]), c.before)
		assert.Equal(t, c.before, c.after)
		assert.Equal(t, 2048, c.n, "frames of 16-bit stereo")
	})
}

func TestEmptyBufferIsNull(t *testing.T) {
	called := false
	fake(t, &checkCollisionPointPoly, func(point Vector2, points unsafe.Pointer, pointCount int32) bool {
		called = true
		assert.Nil(t, points)
		assert.Zero(t, pointCount)
		return false
	})

	assert.False(t, CheckCollisionPointPoly(Vector2{}, nil))
	assert.True(t, called)
}

func TestSetShaderValue(t *testing.T) {
	var got []float32
	var typ ShaderUniformDataType
	fake(t, &setShaderValue, func(shader Shader, locIndex int32, value unsafe.Pointer, uniformType ShaderUniformDataType) {
		got = append(got, unsafe.Slice((*float32)(value), 3)...)
		typ = uniformType
	})

	SetShaderValue(Shader{}, 1, Vector3{0.5, 1, 2}, ShaderUniformVec3)
	assert.Equal(t, []float32{0.5, 1, 2}, got)
	assert.Equal(t, ShaderUniformVec3, typ)

	var count int32
	fake(t, &setShaderValueV, func(shader Shader, locIndex int32, value unsafe.Pointer, uniformType ShaderUniformDataType, n int32) {
		count = n
	})

	SetShaderValueV(Shader{}, 1, []float32{1, 2, 3, 4}, ShaderUniformFloat)
	assert.Equal(t, int32(4), count)
}

func TestFrames(t *testing.T) {
	cases := []struct {
		name   string
		stream AudioStream
		bytes  int
		want   int32
	}{
		{"16-bit stereo", AudioStream{SampleSize: 16, Channels: 2}, 4096, 1024},
		{"32-bit mono", AudioStream{SampleSize: 32, Channels: 1}, 4096, 1024},
		{"8-bit stereo", AudioStream{SampleSize: 8, Channels: 2}, 4096, 2048},
		{"partial frame", AudioStream{SampleSize: 16, Channels: 2}, 4098, 1024},
		{"zero format", AudioStream{}, 4096, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, frames(tc.stream, make([]byte, tc.bytes)))
		})
	}
}

func TestGetCharPressed(t *testing.T) {
	fake(t, &getCharPressed, func() int32 { return 'é' })
	assert.Equal(t, 'é', GetCharPressed())
}
