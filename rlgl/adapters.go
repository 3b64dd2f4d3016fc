package rlgl

import (
	"unsafe"

	"github.com/x448/float16"

	"github.com/jmorganca/raylib/internal/native"
	rl "github.com/jmorganca/raylib/raylib"
)

var (
	loadVertexBuffer           func(buffer unsafe.Pointer, size int32, dynamic bool) uint32
	loadVertexBufferElement    func(buffer unsafe.Pointer, size int32, dynamic bool) uint32
	updateVertexBuffer         func(bufferID uint32, data unsafe.Pointer, dataSize, offset int32)
	updateVertexBufferElements func(id uint32, data unsafe.Pointer, dataSize, offset int32)
	setVertexAttributeDefault  func(locIndex int32, value unsafe.Pointer, attribType rl.ShaderAttributeDataType, count int32)

	loadTexture         func(data unsafe.Pointer, width, height int32, format rl.PixelFormat, mipmapCount int32) uint32
	loadTextureCubemap  func(data unsafe.Pointer, size int32, format rl.PixelFormat) uint32
	updateTexture       func(id uint32, offsetX, offsetY, width, height int32, format rl.PixelFormat, data unsafe.Pointer)
	getGlTextureFormats func(format rl.PixelFormat, glInternalFormat, glFormat, glType *uint32)
	getPixelFormatName  func(format rl.PixelFormat) unsafe.Pointer
	genTextureMipmaps   func(id uint32, width, height int32, format rl.PixelFormat, mipmaps *int32)
	readScreenPixels    func(width, height int32) unsafe.Pointer

	loadShaderCode     func(vsCode, fsCode *byte) uint32
	compileShader      func(shaderCode *byte, kind ShaderType) uint32
	getLocationUniform func(shaderID uint32, uniformName *byte) int32
	getLocationAttrib  func(shaderID uint32, attribName *byte) int32
	setUniform         func(locIndex int32, value unsafe.Pointer, uniformType rl.ShaderUniformDataType, count int32)
	setUniformMatrices func(locIndex int32, mat unsafe.Pointer, count int32)

	loadShaderBuffer   func(size uint32, data unsafe.Pointer, usageHint BufferUsage) uint32
	updateShaderBuffer func(id uint32, data unsafe.Pointer, dataSize, offset uint32)
	readShaderBuffer   func(id uint32, dest unsafe.Pointer, count, offset uint32)
)

// memFree releases memory rlgl allocated for a result.
var memFree = rl.MemFree

var adapterSymbols = []native.Symbol{
	{"rlLoadVertexBuffer", &loadVertexBuffer},
	{"rlLoadVertexBufferElement", &loadVertexBufferElement},
	{"rlUpdateVertexBuffer", &updateVertexBuffer},
	{"rlUpdateVertexBufferElements", &updateVertexBufferElements},
	{"rlSetVertexAttributeDefault", &setVertexAttributeDefault},

	{"rlLoadTexture", &loadTexture},
	{"rlLoadTextureCubemap", &loadTextureCubemap},
	{"rlUpdateTexture", &updateTexture},
	{"rlGetGlTextureFormats", &getGlTextureFormats},
	{"rlGetPixelFormatName", &getPixelFormatName},
	{"rlGenTextureMipmaps", &genTextureMipmaps},
	{"rlReadScreenPixels", &readScreenPixels},

	{"rlLoadShaderCode", &loadShaderCode},
	{"rlCompileShader", &compileShader},
	{"rlGetLocationUniform", &getLocationUniform},
	{"rlGetLocationAttrib", &getLocationAttrib},
	{"rlSetUniform", &setUniform},
	{"rlSetUniformMatrices", &setUniformMatrices},

	{"rlLoadShaderBuffer", &loadShaderBuffer},
	{"rlUpdateShaderBuffer", &updateShaderBuffer},
	{"rlReadShaderBuffer", &readShaderBuffer},
}

// LoadVertexBuffer uploads buffer into a new vertex buffer object and
// returns its id.
func LoadVertexBuffer[T any](buffer []T, dynamic bool) uint32 {
	p, release := native.PinSlice(buffer)
	defer release()
	return loadVertexBuffer(p, int32(native.ByteLen(buffer)), dynamic)
}

// LoadVertexBufferElement uploads indices into a new element buffer.
func LoadVertexBufferElement[T any](buffer []T, dynamic bool) uint32 {
	p, release := native.PinSlice(buffer)
	defer release()
	return loadVertexBufferElement(p, int32(native.ByteLen(buffer)), dynamic)
}

// UpdateVertexBuffer replaces data starting offset bytes into the buffer.
func UpdateVertexBuffer[T any](bufferID uint32, data []T, offset int32) {
	p, release := native.PinSlice(data)
	defer release()
	updateVertexBuffer(bufferID, p, int32(native.ByteLen(data)), offset)
}

func UpdateVertexBufferElements[T any](id uint32, data []T, offset int32) {
	p, release := native.PinSlice(data)
	defer release()
	updateVertexBufferElements(id, p, int32(native.ByteLen(data)), offset)
}

// SetVertexAttributeDefault sets the value an attribute takes when no buffer
// provides it. count is the number of components of value.
func SetVertexAttributeDefault[T any](locIndex int32, value T, attribType rl.ShaderAttributeDataType, count int32) {
	v, release := native.PinValue(&value)
	defer release()
	setVertexAttributeDefault(locIndex, unsafe.Pointer(v), attribType, count)
}

// SetVertexAttributeDefaultV is SetVertexAttributeDefault with the components
// given as a slice.
func SetVertexAttributeDefaultV[T any](locIndex int32, value []T, attribType rl.ShaderAttributeDataType) {
	p, release := native.PinSlice(value)
	defer release()
	setVertexAttributeDefault(locIndex, p, attribType, int32(len(value)))
}

// LoadTexture uploads pixel data in format and returns the texture id, or 0
// on failure.
func LoadTexture[T any](data []T, width, height int32, format rl.PixelFormat, mipmapCount int32) uint32 {
	p, release := native.PinSlice(data)
	defer release()
	return loadTexture(p, width, height, format, mipmapCount)
}

// LoadTextureHalf uploads float32 pixels to one of the 16-bit float
// formats, converting them to IEEE 754 half precision first.
func LoadTextureHalf(data []float32, width, height int32, format rl.PixelFormat, mipmapCount int32) uint32 {
	switch format {
	case rl.PixelFormatUncompressedR16, rl.PixelFormatUncompressedR16G16B16, rl.PixelFormatUncompressedR16G16B16A16:
	default:
		panic("rlgl: LoadTextureHalf needs a 16-bit float pixel format")
	}

	return LoadTexture(toHalf(data), width, height, format, mipmapCount)
}

func toHalf(data []float32) []float16.Float16 {
	half := make([]float16.Float16, len(data))
	for i, f := range data {
		half[i] = float16.Fromfloat32(f)
	}
	return half
}

// LoadTextureCubemap uploads the six faces in data, laid out one after the
// other, and returns the cubemap id.
func LoadTextureCubemap[T any](data []T, format rl.PixelFormat) uint32 {
	p, release := native.PinSlice(data)
	defer release()
	return loadTextureCubemap(p, int32(native.ByteLen(data)), format)
}

// LoadTextureCubemapEmpty allocates a cubemap of size bytes without data.
func LoadTextureCubemapEmpty(size int32, format rl.PixelFormat) uint32 {
	return loadTextureCubemap(nil, size, format)
}

// UpdateTexture replaces a width by height area of the texture at
// (offsetX, offsetY) with data in format.
func UpdateTexture[T any](id uint32, offsetX, offsetY, width, height int32, format rl.PixelFormat, data []T) {
	p, release := native.PinSlice(data)
	defer release()
	updateTexture(id, offsetX, offsetY, width, height, format, p)
}

// GetGlTextureFormats returns the OpenGL internal format, format and type
// for a raylib pixel format.
func GetGlTextureFormats(format rl.PixelFormat) (glInternalFormat, glFormat, glType uint32) {
	var out [3]uint32
	_, release := native.PinSlice(out[:])
	defer release()

	getGlTextureFormats(format, &out[0], &out[1], &out[2])
	return out[0], out[1], out[2]
}

// GetPixelFormatName returns the GL name of format, such as
// "R8G8B8A8", or "" for an unknown format.
func GetPixelFormatName(format rl.PixelFormat) string {
	return native.GoString(getPixelFormatName(format))
}

// GenTextureMipmaps generates the texture's mipmaps and returns how many
// levels it has.
func GenTextureMipmaps(id uint32, width, height int32, format rl.PixelFormat) int32 {
	var mipmaps int32
	p, release := native.PinValue(&mipmaps)
	defer release()
	genTextureMipmaps(id, width, height, format, p)
	return mipmaps
}

// ReadScreenPixels reads the framebuffer as R8G8B8A8 rows, top row first.
func ReadScreenPixels(width, height int32) []byte {
	return native.LoadAndRelease(
		func() unsafe.Pointer { return readScreenPixels(width, height) },
		memFree,
		func(p unsafe.Pointer) []byte { return native.CopyBytes(p, 4*int(width)*int(height)) },
	)
}

// LoadShaderCode compiles and links a program from source. An empty string
// selects the default shader for that stage.
func LoadShaderCode(vsCode, fsCode string) uint32 {
	vs, releaseVS := native.CStringOrNil(vsCode)
	defer releaseVS()
	fs, releaseFS := native.CStringOrNil(fsCode)
	defer releaseFS()
	return loadShaderCode(vs, fs)
}

func CompileShader(shaderCode string, kind ShaderType) uint32 {
	code, release := native.CString(shaderCode)
	defer release()
	return compileShader(code, kind)
}

// GetLocationUniform returns the location of a uniform, or -1.
func GetLocationUniform(shaderID uint32, uniformName string) int32 {
	name, release := native.CString(uniformName)
	defer release()
	return getLocationUniform(shaderID, name)
}

// GetLocationAttrib returns the location of a vertex attribute, or -1.
func GetLocationAttrib(shaderID uint32, attribName string) int32 {
	name, release := native.CString(attribName)
	defer release()
	return getLocationAttrib(shaderID, name)
}

// SetUniform sets the uniform at locIndex from a single value holding count
// elements of uniformType.
func SetUniform[T any](locIndex int32, value T, uniformType rl.ShaderUniformDataType, count int32) {
	v, release := native.PinValue(&value)
	defer release()
	setUniform(locIndex, unsafe.Pointer(v), uniformType, count)
}

// SetUniformV sets a uniform array with one element per value.
func SetUniformV[T any](locIndex int32, values []T, uniformType rl.ShaderUniformDataType) {
	p, release := native.PinSlice(values)
	defer release()
	setUniform(locIndex, p, uniformType, int32(len(values)))
}

func SetUniformMatrices(locIndex int32, mats []Matrix) {
	p, release := native.PinSlice(mats)
	defer release()
	setUniformMatrices(locIndex, p, int32(len(mats)))
}

// LoadShaderBuffer creates a shader storage buffer holding data.
func LoadShaderBuffer[T any](data []T, usageHint BufferUsage) uint32 {
	p, release := native.PinSlice(data)
	defer release()
	return loadShaderBuffer(uint32(native.ByteLen(data)), p, usageHint)
}

// LoadShaderBufferEmpty creates a zeroed shader storage buffer of size
// bytes.
func LoadShaderBufferEmpty(size uint32, usageHint BufferUsage) uint32 {
	return loadShaderBuffer(size, nil, usageHint)
}

// UpdateShaderBuffer writes data offset bytes into the buffer.
func UpdateShaderBuffer[T any](id uint32, data []T, offset uint32) {
	p, release := native.PinSlice(data)
	defer release()
	updateShaderBuffer(id, p, uint32(native.ByteLen(data)), offset)
}

// ReadShaderBuffer fills dest from the buffer, starting offset bytes in.
func ReadShaderBuffer[T any](id uint32, dest []T, offset uint32) {
	p, release := native.PinSlice(dest)
	defer release()
	readShaderBuffer(id, p, uint32(native.ByteLen(dest)), offset)
}
