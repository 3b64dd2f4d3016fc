package raylib

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

// The structs in this file mirror raylib.h 5.5-dev field for field. Field
// order and widths must only change together with the native header; the
// layout tests compare them against the C definitions.

// Vector2, 2 components
type Vector2 struct {
	X, Y float32
}

// Vector3, 3 components
type Vector3 struct {
	X, Y, Z float32
}

// Vector4, 4 components
type Vector4 struct {
	X, Y, Z, W float32
}

// Quaternion, 4 components (Vector4 alias)
type Quaternion = Vector4

// Matrix, 4x4 components, column major, OpenGL style, right-handed
type Matrix struct {
	M0, M4, M8, M12  float32
	M1, M5, M9, M13  float32
	M2, M6, M10, M14 float32
	M3, M7, M11, M15 float32
}

// Color, 4 components, R8G8B8A8 (32bit)
type Color struct {
	R, G, B, A uint8
}

// Rectangle, 4 components
type Rectangle struct {
	X, Y, Width, Height float32
}

// Image, pixel data stored in CPU memory (RAM)
type Image struct {
	Data    unsafe.Pointer
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Texture, tex data stored in GPU memory (VRAM)
type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

type (
	// Texture2D, same as Texture
	Texture2D = Texture
	// TextureCubemap, same as Texture
	TextureCubemap = Texture
)

// RenderTexture, fbo for texture rendering
type RenderTexture struct {
	ID      uint32
	Texture Texture
	Depth   Texture
}

// RenderTexture2D, same as RenderTexture
type RenderTexture2D = RenderTexture

// NPatchInfo, n-patch layout info
type NPatchInfo struct {
	Source Rectangle
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
	Layout NPatchLayout
}

// GlyphInfo, font characters glyphs info
type GlyphInfo struct {
	Value    int32
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
	Image    Image
}

// Font, font texture and GlyphInfo array data
type Font struct {
	BaseSize     int32
	GlyphCount   int32
	GlyphPadding int32
	Texture      Texture2D
	Recs         *Rectangle
	Glyphs       *GlyphInfo
}

// Camera3D, defines position/orientation in 3d space
type Camera3D struct {
	Position   Vector3
	Target     Vector3
	Up         Vector3
	Fovy       float32
	Projection CameraProjection
}

// Camera, same as Camera3D
type Camera = Camera3D

// Camera2D, defines position/orientation in 2d space
type Camera2D struct {
	Offset   Vector2
	Target   Vector2
	Rotation float32
	Zoom     float32
}

// Mesh, vertex data and vao/vbo
type Mesh struct {
	VertexCount   int32
	TriangleCount int32

	Vertices   *float32
	Texcoords  *float32
	Texcoords2 *float32
	Normals    *float32
	Tangents   *float32
	Colors     *uint8
	Indices    *uint16

	AnimVertices *float32
	AnimNormals  *float32
	BoneIds      *uint8
	BoneWeights  *float32
	BoneMatrices *Matrix
	BoneCount    int32

	VaoID uint32
	VboID *uint32
}

// Shader
type Shader struct {
	ID   uint32
	Locs *int32
}

// MaxShaderLocations is RL_MAX_SHADER_LOCATIONS, the length of Shader.Locs.
const MaxShaderLocations = 32

// LocsView views the shader locations array owned by the native library.
func (s Shader) LocsView() []int32 {
	return native.View[int32](unsafe.Pointer(s.Locs), MaxShaderLocations)
}

// MaterialMap
type MaterialMap struct {
	Texture Texture2D
	Color   Color
	Value   float32
}

// Material, includes shader and maps
type Material struct {
	Shader Shader
	Maps   *MaterialMap
	Params [4]float32
}

// MaxMaterialMaps is MAX_MATERIAL_MAPS, the length of Material.Maps.
const MaxMaterialMaps = 12

// MapsView views the material maps array owned by the native library.
func (m Material) MapsView() []MaterialMap {
	return native.View[MaterialMap](unsafe.Pointer(m.Maps), MaxMaterialMaps)
}

// Transform, vertex transformation data
type Transform struct {
	Translation Vector3
	Rotation    Quaternion
	Scale       Vector3
}

// BoneInfo, skeletal animation bone
type BoneInfo struct {
	Name   [32]byte
	Parent int32
}

// Model, meshes, materials and animation data
type Model struct {
	Transform     Matrix
	MeshCount     int32
	MaterialCount int32
	Meshes        *Mesh
	Materials     *Material
	MeshMaterial  *int32
	BoneCount     int32
	Bones         *BoneInfo
	BindPose      *Transform
}

// MeshesView views the model's mesh array.
func (m Model) MeshesView() []Mesh {
	return native.View[Mesh](unsafe.Pointer(m.Meshes), int(m.MeshCount))
}

// MaterialsView views the model's material array.
func (m Model) MaterialsView() []Material {
	return native.View[Material](unsafe.Pointer(m.Materials), int(m.MaterialCount))
}

// Ray, ray for raycasting
type Ray struct {
	Position  Vector3
	Direction Vector3
}

// RayCollision, ray hit information
type RayCollision struct {
	Hit      bool
	Distance float32
	Point    Vector3
	Normal   Vector3
}

// BoundingBox
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// Wave, audio wave data
type Wave struct {
	FrameCount uint32
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
	Data       unsafe.Pointer
}

// AudioStream, custom audio stream
type AudioStream struct {
	Buffer     unsafe.Pointer
	Processor  unsafe.Pointer
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
}

// Sound
type Sound struct {
	Stream     AudioStream
	FrameCount uint32
}

// Music, audio stream, anything longer than ~10 seconds should be streamed
type Music struct {
	Stream     AudioStream
	FrameCount uint32
	Looping    bool
	CtxType    int32
	CtxData    unsafe.Pointer
}

// VrDeviceInfo, Head-Mounted-Display device parameters
type VrDeviceInfo struct {
	HResolution            int32
	VResolution            int32
	HScreenSize            float32
	VScreenSize            float32
	EyeToScreenDistance    float32
	LensSeparationDistance float32
	InterpupillaryDistance float32
	LensDistortionValues   [4]float32
	ChromaAbCorrection     [4]float32
}

// VrStereoConfig, VR stereo rendering configuration for simulator
type VrStereoConfig struct {
	Projection        [2]Matrix
	ViewOffset        [2]Matrix
	LeftLensCenter    [2]float32
	RightLensCenter   [2]float32
	LeftScreenCenter  [2]float32
	RightScreenCenter [2]float32
	Scale             [2]float32
	ScaleIn           [2]float32
}

// FilePathList
type FilePathList struct {
	Capacity uint32
	Count    uint32
	Paths    **byte
}

// strings copies the paths out of native memory.
func (l FilePathList) strings() []string {
	paths := native.View[*byte](unsafe.Pointer(l.Paths), int(l.Count))
	s := make([]string, len(paths))
	for i, p := range paths {
		s[i] = native.GoString(unsafe.Pointer(p))
	}
	return s
}

// AutomationEvent
type AutomationEvent struct {
	Frame  uint32
	Type   uint32
	Params [4]int32
}

// AutomationEventList
type AutomationEventList struct {
	Capacity uint32
	Count    uint32
	Events   *AutomationEvent
}

// EventsView views the recorded events owned by the native library.
func (l AutomationEventList) EventsView() []AutomationEvent {
	return native.View[AutomationEvent](unsafe.Pointer(l.Events), int(l.Count))
}
