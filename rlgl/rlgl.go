// Package rlgl binds rlgl, the OpenGL abstraction layer raylib draws
// through. Its entry points live in the same shared library as raylib's and
// are bound by raylib.Load; calling them before that panics.
//
// Functions drop the rl prefix of their C names.
package rlgl

import (
	"github.com/jmorganca/raylib/internal/native"
	rl "github.com/jmorganca/raylib/raylib"
)

// Matrix is raylib's column-major 4x4 matrix.
type Matrix = rl.Matrix

var (
	matrixMode    func(mode MatrixModeType)
	pushMatrix    func()
	popMatrix     func()
	loadIdentity  func()
	translatef    func(x, y, z float32)
	rotatef       func(angle, x, y, z float32)
	scalef        func(x, y, z float32)
	multMatrixf   func(matf *float32)
	frustum       func(left, right, bottom, top, znear, zfar float64)
	ortho         func(left, right, bottom, top, znear, zfar float64)
	viewport      func(x, y, width, height int32)
	setClipPlanes func(nearPlane, farPlane float64)

	begin      func(mode DrawMode)
	end        func()
	vertex2i   func(x, y int32)
	vertex2f   func(x, y float32)
	vertex3f   func(x, y, z float32)
	texCoord2f func(x, y float32)
	normal3f   func(x, y, z float32)
	color4ub   func(r, g, b, a uint8)
	color3f    func(x, y, z float32)
	color4f    func(x, y, z, w float32)

	enableVertexArray      func(vaoID uint32) bool
	disableVertexArray     func()
	enableTexture          func(id uint32)
	disableTexture         func()
	activeTextureSlot      func(slot int32)
	textureParameters      func(id uint32, param TextureParam, value int32)
	enableShader           func(id uint32)
	disableShader          func()
	enableFramebuffer      func(id uint32)
	disableFramebuffer     func()
	enableDepthTest        func()
	disableDepthTest       func()
	enableBackfaceCulling  func()
	disableBackfaceCulling func()
	setBlendMode           func(mode rl.BlendMode)
	clearColor             func(r, g, b, a uint8)
	clearScreenBuffers     func()
	getVersion             func() GlVersion
	getTextureIDDefault    func() uint32
	getShaderIDDefault     func() uint32

	loadRenderBatch           func(numBuffers, bufferElements int32) RenderBatch
	unloadRenderBatch         func(batch RenderBatch)
	drawRenderBatch           func(batch *RenderBatch)
	setRenderBatchActive      func(batch *RenderBatch)
	drawRenderBatchActive     func()
	checkRenderBatchLimit     func(vCount int32) bool
	setTexture                func(id uint32)
	loadVertexArray           func() uint32
	unloadVertexArray         func(vaoID uint32)
	unloadVertexBuffer        func(vboID uint32)
	setVertexAttribute        func(index uint32, compSize, kind int32, normalized bool, stride, offset int32)
	setVertexAttributeDivisor func(index uint32, divisor int32)
	drawVertexArray           func(offset, count int32)
	drawVertexArrayElements   func(offset, count int32, buffer uintptr)

	loadTextureDepth    func(width, height int32, useRenderBuffer bool) uint32
	unloadTexture       func(id uint32)
	loadFramebuffer     func() uint32
	framebufferAttach   func(fboID, texID uint32, attachType FramebufferAttachType, texType FramebufferAttachTextureType, mipLevel int32)
	framebufferComplete func(id uint32) bool
	unloadFramebuffer   func(id uint32)

	loadShaderProgram        func(vShaderID, fShaderID uint32) uint32
	unloadShaderProgram      func(id uint32)
	setUniformMatrix         func(locIndex int32, mat Matrix)
	setUniformSampler        func(locIndex int32, textureID uint32)
	loadComputeShaderProgram func(shaderID uint32) uint32
	computeShaderDispatch    func(groupX, groupY, groupZ uint32)
	unloadShaderBuffer       func(ssboID uint32)
	bindShaderBuffer         func(id, index uint32)
	copyShaderBuffer         func(destID, srcID, destOffset, srcOffset, count uint32)
	getShaderBufferSize      func(id uint32) uint32
	bindImageTexture         func(id, index uint32, format rl.PixelFormat, readonly bool)

	getMatrixModelview  func() Matrix
	getMatrixProjection func() Matrix
	setMatrixProjection func(proj Matrix)
	setMatrixModelview  func(view Matrix)
)

var table = &native.Table{Name: "rlgl"}

func init() {
	for _, symbols := range [][]native.Symbol{
		{
			{"rlMatrixMode", &matrixMode},
			{"rlPushMatrix", &pushMatrix},
			{"rlPopMatrix", &popMatrix},
			{"rlLoadIdentity", &loadIdentity},
			{"rlTranslatef", &translatef},
			{"rlRotatef", &rotatef},
			{"rlScalef", &scalef},
			{"rlMultMatrixf", &multMatrixf},
			{"rlFrustum", &frustum},
			{"rlOrtho", &ortho},
			{"rlViewport", &viewport},
			{"rlSetClipPlanes", &setClipPlanes},
		},
		{
			{"rlBegin", &begin},
			{"rlEnd", &end},
			{"rlVertex2i", &vertex2i},
			{"rlVertex2f", &vertex2f},
			{"rlVertex3f", &vertex3f},
			{"rlTexCoord2f", &texCoord2f},
			{"rlNormal3f", &normal3f},
			{"rlColor4ub", &color4ub},
			{"rlColor3f", &color3f},
			{"rlColor4f", &color4f},
		},
		{
			{"rlEnableVertexArray", &enableVertexArray},
			{"rlDisableVertexArray", &disableVertexArray},
			{"rlEnableTexture", &enableTexture},
			{"rlDisableTexture", &disableTexture},
			{"rlActiveTextureSlot", &activeTextureSlot},
			{"rlTextureParameters", &textureParameters},
			{"rlEnableShader", &enableShader},
			{"rlDisableShader", &disableShader},
			{"rlEnableFramebuffer", &enableFramebuffer},
			{"rlDisableFramebuffer", &disableFramebuffer},
			{"rlEnableDepthTest", &enableDepthTest},
			{"rlDisableDepthTest", &disableDepthTest},
			{"rlEnableBackfaceCulling", &enableBackfaceCulling},
			{"rlDisableBackfaceCulling", &disableBackfaceCulling},
			{"rlSetBlendMode", &setBlendMode},
			{"rlClearColor", &clearColor},
			{"rlClearScreenBuffers", &clearScreenBuffers},
			{"rlGetVersion", &getVersion},
			{"rlGetTextureIdDefault", &getTextureIDDefault},
			{"rlGetShaderIdDefault", &getShaderIDDefault},
		},
		{
			{"rlLoadRenderBatch", &loadRenderBatch},
			{"rlUnloadRenderBatch", &unloadRenderBatch},
			{"rlDrawRenderBatch", &drawRenderBatch},
			{"rlSetRenderBatchActive", &setRenderBatchActive},
			{"rlDrawRenderBatchActive", &drawRenderBatchActive},
			{"rlCheckRenderBatchLimit", &checkRenderBatchLimit},
			{"rlSetTexture", &setTexture},
			{"rlLoadVertexArray", &loadVertexArray},
			{"rlUnloadVertexArray", &unloadVertexArray},
			{"rlUnloadVertexBuffer", &unloadVertexBuffer},
			{"rlSetVertexAttribute", &setVertexAttribute},
			{"rlSetVertexAttributeDivisor", &setVertexAttributeDivisor},
			{"rlDrawVertexArray", &drawVertexArray},
			{"rlDrawVertexArrayElements", &drawVertexArrayElements},
		},
		{
			{"rlLoadTextureDepth", &loadTextureDepth},
			{"rlUnloadTexture", &unloadTexture},
			{"rlLoadFramebuffer", &loadFramebuffer},
			{"rlFramebufferAttach", &framebufferAttach},
			{"rlFramebufferComplete", &framebufferComplete},
			{"rlUnloadFramebuffer", &unloadFramebuffer},
		},
		{
			{"rlLoadShaderProgram", &loadShaderProgram},
			{"rlUnloadShaderProgram", &unloadShaderProgram},
			{"rlSetUniformMatrix", &setUniformMatrix},
			{"rlSetUniformSampler", &setUniformSampler},
			{"rlLoadComputeShaderProgram", &loadComputeShaderProgram},
			{"rlComputeShaderDispatch", &computeShaderDispatch},
			{"rlUnloadShaderBuffer", &unloadShaderBuffer},
			{"rlBindShaderBuffer", &bindShaderBuffer},
			{"rlCopyShaderBuffer", &copyShaderBuffer},
			{"rlGetShaderBufferSize", &getShaderBufferSize},
			{"rlBindImageTexture", &bindImageTexture},
		},
		{
			{"rlGetMatrixModelview", &getMatrixModelview},
			{"rlGetMatrixProjection", &getMatrixProjection},
			{"rlSetMatrixProjection", &setMatrixProjection},
			{"rlSetMatrixModelview", &setMatrixModelview},
		},
		adapterSymbols,
	} {
		table.Symbols = append(table.Symbols, symbols...)
	}

	native.Register(table)
}

// MatrixMode chooses the matrix stack later transformations apply to.
func MatrixMode(mode MatrixModeType) { matrixMode(mode) }
func PushMatrix()                    { pushMatrix() }
func PopMatrix()                     { popMatrix() }
func LoadIdentity()                  { loadIdentity() }
func Translatef(x, y, z float32)     { translatef(x, y, z) }

// Rotatef rotates by angle degrees around the axis (x, y, z).
func Rotatef(angle, x, y, z float32) { rotatef(angle, x, y, z) }
func Scalef(x, y, z float32)         { scalef(x, y, z) }

// MultMatrixf multiplies the current matrix by mat.
func MultMatrixf(mat Matrix) {
	m := rl.MatrixToFloat(mat)
	p, release := native.PinSlice(m[:])
	defer release()
	multMatrixf((*float32)(p))
}

func Frustum(left, right, bottom, top, znear, zfar float64) {
	frustum(left, right, bottom, top, znear, zfar)
}

func Ortho(left, right, bottom, top, znear, zfar float64) {
	ortho(left, right, bottom, top, znear, zfar)
}

func Viewport(x, y, width, height int32) { viewport(x, y, width, height) }

// SetClipPlanes sets the near and far cull distances used by the projection.
func SetClipPlanes(nearPlane, farPlane float64) { setClipPlanes(nearPlane, farPlane) }

// Begin starts a run of immediate-mode vertices drawn as mode.
func Begin(mode DrawMode)        { begin(mode) }
func End()                       { end() }
func Vertex2i(x, y int32)        { vertex2i(x, y) }
func Vertex2f(x, y float32)      { vertex2f(x, y) }
func Vertex3f(x, y, z float32)   { vertex3f(x, y, z) }
func TexCoord2f(x, y float32)    { texCoord2f(x, y) }
func Normal3f(x, y, z float32)   { normal3f(x, y, z) }
func Color4ub(r, g, b, a uint8)  { color4ub(r, g, b, a) }
func Color3f(x, y, z float32)    { color3f(x, y, z) }
func Color4f(x, y, z, w float32) { color4f(x, y, z, w) }

// EnableVertexArray binds vaoID, reporting whether VAOs are supported.
func EnableVertexArray(vaoID uint32) bool { return enableVertexArray(vaoID) }
func DisableVertexArray()                 { disableVertexArray() }
func EnableTexture(id uint32)             { enableTexture(id) }
func DisableTexture()                     { disableTexture() }
func ActiveTextureSlot(slot int32)        { activeTextureSlot(slot) }

// TextureParameters sets param of the texture id to value, one of the
// TextureParam values or an anisotropy level.
func TextureParameters(id uint32, param TextureParam, value int32) {
	textureParameters(id, param, value)
}

func EnableShader(id uint32)         { enableShader(id) }
func DisableShader()                 { disableShader() }
func EnableFramebuffer(id uint32)    { enableFramebuffer(id) }
func DisableFramebuffer()            { disableFramebuffer() }
func EnableDepthTest()               { enableDepthTest() }
func DisableDepthTest()              { disableDepthTest() }
func EnableBackfaceCulling()         { enableBackfaceCulling() }
func DisableBackfaceCulling()        { disableBackfaceCulling() }
func SetBlendMode(mode rl.BlendMode) { setBlendMode(mode) }
func ClearColor(r, g, b, a uint8)    { clearColor(r, g, b, a) }
func ClearScreenBuffers()            { clearScreenBuffers() }
func GetVersion() GlVersion          { return getVersion() }
func GetTextureIDDefault() uint32    { return getTextureIDDefault() }
func GetShaderIDDefault() uint32     { return getShaderIDDefault() }

// LoadRenderBatch allocates a batch of numBuffers vertex buffers holding
// bufferElements quads each.
func LoadRenderBatch(numBuffers, bufferElements int32) RenderBatch {
	return loadRenderBatch(numBuffers, bufferElements)
}

func UnloadRenderBatch(batch RenderBatch) { unloadRenderBatch(batch) }

// DrawRenderBatch draws batch and resets it. batch is updated in place.
func DrawRenderBatch(batch *RenderBatch) {
	b, release := native.PinValue(batch)
	defer release()
	drawRenderBatch(b)
}

// SetRenderBatchActive makes batch the target of immediate-mode calls; nil
// restores the default batch. rlgl keeps the pointer, so batch must stay
// alive and unmoved until another batch is set.
func SetRenderBatchActive(batch *RenderBatch) {
	b, release := native.PinValue(batch)
	defer release()
	setRenderBatchActive(b)
}

func DrawRenderBatchActive() { drawRenderBatchActive() }

// CheckRenderBatchLimit flushes the active batch if vCount more vertices do
// not fit, reporting whether it did.
func CheckRenderBatchLimit(vCount int32) bool { return checkRenderBatchLimit(vCount) }

func SetTexture(id uint32)            { setTexture(id) }
func LoadVertexArray() uint32         { return loadVertexArray() }
func UnloadVertexArray(vaoID uint32)  { unloadVertexArray(vaoID) }
func UnloadVertexBuffer(vboID uint32) { unloadVertexBuffer(vboID) }

// SetVertexAttribute describes attribute index of the bound vertex buffer;
// kind is a GL type such as GL_FLOAT and offset is in bytes.
func SetVertexAttribute(index uint32, compSize, kind int32, normalized bool, stride, offset int32) {
	setVertexAttribute(index, compSize, kind, normalized, stride, offset)
}

func SetVertexAttributeDivisor(index uint32, divisor int32) {
	setVertexAttributeDivisor(index, divisor)
}

func DrawVertexArray(offset, count int32) { drawVertexArray(offset, count) }

// DrawVertexArrayElements draws count indices of the bound element buffer,
// starting offset bytes into it.
func DrawVertexArrayElements(offset, count int32, bufferOffset uintptr) {
	drawVertexArrayElements(offset, count, bufferOffset)
}

func LoadTextureDepth(width, height int32, useRenderBuffer bool) uint32 {
	return loadTextureDepth(width, height, useRenderBuffer)
}

func UnloadTexture(id uint32) { unloadTexture(id) }

// LoadFramebuffer creates an empty framebuffer object.
func LoadFramebuffer() uint32 { return loadFramebuffer() }

func FramebufferAttach(fboID, texID uint32, attachType FramebufferAttachType, texType FramebufferAttachTextureType, mipLevel int32) {
	framebufferAttach(fboID, texID, attachType, texType, mipLevel)
}

func FramebufferComplete(id uint32) bool { return framebufferComplete(id) }
func UnloadFramebuffer(id uint32)        { unloadFramebuffer(id) }

func LoadShaderProgram(vShaderID, fShaderID uint32) uint32 {
	return loadShaderProgram(vShaderID, fShaderID)
}

func UnloadShaderProgram(id uint32)                      { unloadShaderProgram(id) }
func SetUniformMatrix(locIndex int32, mat Matrix)        { setUniformMatrix(locIndex, mat) }
func SetUniformSampler(locIndex int32, textureID uint32) { setUniformSampler(locIndex, textureID) }

func LoadComputeShaderProgram(shaderID uint32) uint32 { return loadComputeShaderProgram(shaderID) }

func ComputeShaderDispatch(groupX, groupY, groupZ uint32) {
	computeShaderDispatch(groupX, groupY, groupZ)
}

func UnloadShaderBuffer(ssboID uint32)  { unloadShaderBuffer(ssboID) }
func BindShaderBuffer(id, index uint32) { bindShaderBuffer(id, index) }

// CopyShaderBuffer copies count bytes between two shader buffers.
func CopyShaderBuffer(destID, srcID, destOffset, srcOffset, count uint32) {
	copyShaderBuffer(destID, srcID, destOffset, srcOffset, count)
}

// GetShaderBufferSize returns the size in bytes of the shader buffer.
func GetShaderBufferSize(id uint32) uint32 { return getShaderBufferSize(id) }

func BindImageTexture(id, index uint32, format rl.PixelFormat, readonly bool) {
	bindImageTexture(id, index, format, readonly)
}

func GetMatrixModelview() Matrix      { return getMatrixModelview() }
func GetMatrixProjection() Matrix     { return getMatrixProjection() }
func SetMatrixProjection(proj Matrix) { setMatrixProjection(proj) }
func SetMatrixModelview(view Matrix)  { setMatrixModelview(view) }
