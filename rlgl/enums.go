package rlgl

// GlVersion, OpenGL version
type GlVersion int32

const (
	Opengl11Software GlVersion = iota
	Opengl11
	Opengl21
	Opengl33
	Opengl43
	OpenglEs20
	OpenglEs30
)

// MatrixModeType selects the matrix stack MatrixMode operates on.
type MatrixModeType int32

const (
	Modelview  MatrixModeType = 0x1700
	Projection MatrixModeType = 0x1701
	Texture    MatrixModeType = 0x1702
)

// DrawMode, primitive assembly draw modes
type DrawMode int32

const (
	Lines     DrawMode = 0x0001
	Triangles DrawMode = 0x0004
	Quads     DrawMode = 0x0007
)

// ShaderType, shader stage
type ShaderType int32

const (
	FragmentShader ShaderType = 0x8B30
	VertexShader   ShaderType = 0x8B31
	ComputeShader  ShaderType = 0x91B9
)

// BufferUsage, GL buffer usage hint
type BufferUsage int32

const (
	StreamDraw  BufferUsage = 0x88E0
	StreamRead  BufferUsage = 0x88E1
	StreamCopy  BufferUsage = 0x88E2
	StaticDraw  BufferUsage = 0x88E4
	StaticRead  BufferUsage = 0x88E5
	StaticCopy  BufferUsage = 0x88E6
	DynamicDraw BufferUsage = 0x88E8
	DynamicRead BufferUsage = 0x88E9
	DynamicCopy BufferUsage = 0x88EA
)

// FramebufferAttachType, framebuffer attachment point
type FramebufferAttachType int32

const (
	AttachmentColorChannel0 FramebufferAttachType = iota
	AttachmentColorChannel1
	AttachmentColorChannel2
	AttachmentColorChannel3
	AttachmentColorChannel4
	AttachmentColorChannel5
	AttachmentColorChannel6
	AttachmentColorChannel7
	AttachmentDepth   FramebufferAttachType = 100
	AttachmentStencil FramebufferAttachType = 200
)

// FramebufferAttachTextureType, framebuffer texture attachment kind
type FramebufferAttachTextureType int32

const (
	AttachmentCubemapPositiveX FramebufferAttachTextureType = iota
	AttachmentCubemapNegativeX
	AttachmentCubemapPositiveY
	AttachmentCubemapNegativeY
	AttachmentCubemapPositiveZ
	AttachmentCubemapNegativeZ
	AttachmentTexture2D    FramebufferAttachTextureType = 100
	AttachmentRenderbuffer FramebufferAttachTextureType = 200
)

// TextureParam, texture parameter names and values for TextureParameters
type TextureParam int32

const (
	TextureWrapS                  TextureParam = 0x2802
	TextureWrapT                  TextureParam = 0x2803
	TextureMagFilter              TextureParam = 0x2800
	TextureMinFilter              TextureParam = 0x2801
	TextureFilterNearest          TextureParam = 0x2600
	TextureFilterLinear           TextureParam = 0x2601
	TextureFilterMipNearest       TextureParam = 0x2700
	TextureFilterNearestMipLinear TextureParam = 0x2702
	TextureFilterLinearMipNearest TextureParam = 0x2701
	TextureFilterMipLinear        TextureParam = 0x2703
	TextureFilterAnisotropic      TextureParam = 0x3000
	TextureMipmapBiasRatio        TextureParam = 0x4000
	TextureWrapRepeat             TextureParam = 0x2901
	TextureWrapClamp              TextureParam = 0x812F
	TextureWrapMirrorRepeat       TextureParam = 0x8370
	TextureWrapMirrorClamp        TextureParam = 0x8742
)
