package raylib

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var layouts = Layouts()

// Sizes from raylib.h 5.5-dev on LP64 and LLP64 targets.
func TestLayoutSizes64(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("sizes below are for 64-bit targets")
	}

	want := map[string]uintptr{
		"Vector2":             8,
		"Vector3":             12,
		"Vector4":             16,
		"Matrix":              64,
		"Color":               4,
		"Rectangle":           16,
		"Image":               24,
		"Texture":             20,
		"RenderTexture":       44,
		"NPatchInfo":          36,
		"GlyphInfo":           40,
		"Font":                48,
		"Camera3D":            44,
		"Camera2D":            24,
		"Mesh":                120,
		"Shader":              16,
		"MaterialMap":         28,
		"Material":            40,
		"Transform":           40,
		"BoneInfo":            36,
		"Model":               120,
		"Ray":                 24,
		"RayCollision":        32,
		"BoundingBox":         24,
		"Wave":                24,
		"AudioStream":         32,
		"Sound":               40,
		"Music":               56,
		"VrDeviceInfo":        60,
		"VrStereoConfig":      304,
		"FilePathList":        16,
		"AutomationEvent":     24,
		"AutomationEventList": 16,
	}

	got := make(map[string]uintptr, len(layouts))
	for _, l := range layouts {
		got[l.Name] = l.Size
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("struct sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutOffsets64(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("offsets below are for 64-bit targets")
	}

	cases := map[string]map[string]uintptr{
		"Font":         {"BaseSize": 0, "GlyphCount": 4, "GlyphPadding": 8, "Texture": 12, "Recs": 32, "Glyphs": 40},
		"Shader":       {"ID": 0, "Locs": 8},
		"Model":        {"Transform": 0, "MeshCount": 64, "MaterialCount": 68, "Meshes": 72, "Materials": 80, "MeshMaterial": 88, "BoneCount": 96, "Bones": 104, "BindPose": 112},
		"Music":        {"Stream": 0, "FrameCount": 32, "Looping": 36, "CtxType": 40, "CtxData": 48},
		"RayCollision": {"Hit": 0, "Distance": 4, "Point": 8, "Normal": 20},
		"Mesh":         {"VertexCount": 0, "Vertices": 8, "Indices": 56, "BoneMatrices": 96, "BoneCount": 104, "VaoID": 108, "VboID": 112},
	}

	for _, l := range layouts {
		want, ok := cases[l.Name]
		if !ok {
			continue
		}

		t.Run(l.Name, func(t *testing.T) {
			got := l.Offsets()
			for field, offset := range want {
				assert.Equal(t, offset, got[field], "%s.%s", l.Name, field)
			}
		})
	}
}

// One canonical struct stands behind each pair of raylib type names.
func TestCanonicalAliases(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(Texture{}), reflect.TypeOf(Texture2D{}))
	assert.Equal(t, reflect.TypeOf(Texture{}), reflect.TypeOf(TextureCubemap{}))
	assert.Equal(t, reflect.TypeOf(RenderTexture{}), reflect.TypeOf(RenderTexture2D{}))
	assert.Equal(t, reflect.TypeOf(Camera3D{}), reflect.TypeOf(Camera{}))
	assert.Equal(t, reflect.TypeOf(Vector4{}), reflect.TypeOf(Quaternion{}))
}
