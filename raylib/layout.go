package raylib

import "github.com/jmorganca/raylib/internal/native"

// Layouts describes the Go side of every struct shared with the native
// library, in declaration order of raylib.h.
func Layouts() []native.Layout {
	return []native.Layout{
		native.LayoutOf("Vector2", Vector2{}),
		native.LayoutOf("Vector3", Vector3{}),
		native.LayoutOf("Vector4", Vector4{}),
		native.LayoutOf("Matrix", Matrix{}),
		native.LayoutOf("Color", Color{}),
		native.LayoutOf("Rectangle", Rectangle{}),
		native.LayoutOf("Image", Image{}),
		native.LayoutOf("Texture", Texture{}),
		native.LayoutOf("RenderTexture", RenderTexture{}),
		native.LayoutOf("NPatchInfo", NPatchInfo{}),
		native.LayoutOf("GlyphInfo", GlyphInfo{}),
		native.LayoutOf("Font", Font{}),
		native.LayoutOf("Camera3D", Camera3D{}),
		native.LayoutOf("Camera2D", Camera2D{}),
		native.LayoutOf("Mesh", Mesh{}),
		native.LayoutOf("Shader", Shader{}),
		native.LayoutOf("MaterialMap", MaterialMap{}),
		native.LayoutOf("Material", Material{}),
		native.LayoutOf("Transform", Transform{}),
		native.LayoutOf("BoneInfo", BoneInfo{}),
		native.LayoutOf("Model", Model{}),
		native.LayoutOf("Ray", Ray{}),
		native.LayoutOf("RayCollision", RayCollision{}),
		native.LayoutOf("BoundingBox", BoundingBox{}),
		native.LayoutOf("Wave", Wave{}),
		native.LayoutOf("AudioStream", AudioStream{}),
		native.LayoutOf("Sound", Sound{}),
		native.LayoutOf("Music", Music{}),
		native.LayoutOf("VrDeviceInfo", VrDeviceInfo{}),
		native.LayoutOf("VrStereoConfig", VrStereoConfig{}),
		native.LayoutOf("FilePathList", FilePathList{}),
		native.LayoutOf("AutomationEvent", AutomationEvent{}),
		native.LayoutOf("AutomationEventList", AutomationEventList{}),
	}
}
