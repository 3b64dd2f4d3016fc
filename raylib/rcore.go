package raylib

import (
	"strings"
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	initWindow               func(width, height int32, title *byte)
	closeWindow              func()
	windowShouldClose        func() bool
	isWindowReady            func() bool
	isWindowFullscreen       func() bool
	isWindowHidden           func() bool
	isWindowMinimized        func() bool
	isWindowMaximized        func() bool
	isWindowFocused          func() bool
	isWindowResized          func() bool
	isWindowState            func(flag ConfigFlags) bool
	setWindowState           func(flags ConfigFlags)
	clearWindowState         func(flags ConfigFlags)
	toggleFullscreen         func()
	toggleBorderlessWindowed func()
	maximizeWindow           func()
	minimizeWindow           func()
	restoreWindow            func()
	setWindowIcon            func(image Image)
	setWindowIcons           func(images unsafe.Pointer, count int32)
	setWindowTitle           func(title *byte)
	setWindowPosition        func(x, y int32)
	setWindowMonitor         func(monitor int32)
	setWindowMinSize         func(width, height int32)
	setWindowMaxSize         func(width, height int32)
	setWindowSize            func(width, height int32)
	setWindowOpacity         func(opacity float32)
	setWindowFocused         func()
	getWindowHandle          func() unsafe.Pointer
	getScreenWidth           func() int32
	getScreenHeight          func() int32
	getRenderWidth           func() int32
	getRenderHeight          func() int32
	getMonitorCount          func() int32
	getCurrentMonitor        func() int32
	getMonitorPosition       func(monitor int32) Vector2
	getMonitorWidth          func(monitor int32) int32
	getMonitorHeight         func(monitor int32) int32
	getMonitorPhysicalWidth  func(monitor int32) int32
	getMonitorPhysicalHeight func(monitor int32) int32
	getMonitorRefreshRate    func(monitor int32) int32
	getWindowPosition        func() Vector2
	getWindowScaleDPI        func() Vector2
	getMonitorName           func(monitor int32) unsafe.Pointer
	setClipboardText         func(text *byte)
	getClipboardText         func() unsafe.Pointer
	enableEventWaiting       func()
	disableEventWaiting      func()

	showCursor       func()
	hideCursor       func()
	isCursorHidden   func() bool
	enableCursor     func()
	disableCursor    func()
	isCursorOnScreen func() bool

	clearBackground      func(color Color)
	beginDrawing         func()
	endDrawing           func()
	beginMode2D          func(camera Camera2D)
	endMode2D            func()
	beginMode3D          func(camera Camera3D)
	endMode3D            func()
	beginTextureMode     func(target RenderTexture2D)
	endTextureMode       func()
	beginShaderMode      func(shader Shader)
	endShaderMode        func()
	beginBlendMode       func(mode BlendMode)
	endBlendMode         func()
	beginScissorMode     func(x, y, width, height int32)
	endScissorMode       func()
	beginVrStereoMode    func(config VrStereoConfig)
	endVrStereoMode      func()
	loadVrStereoConfig   func(device VrDeviceInfo) VrStereoConfig
	unloadVrStereoConfig func(config VrStereoConfig)

	loadShader              func(vsFileName, fsFileName *byte) Shader
	loadShaderFromMemory    func(vsCode, fsCode *byte) Shader
	isShaderReady           func(shader Shader) bool
	getShaderLocation       func(shader Shader, uniformName *byte) int32
	getShaderLocationAttrib func(shader Shader, attribName *byte) int32
	setShaderValue          func(shader Shader, locIndex int32, value unsafe.Pointer, uniformType ShaderUniformDataType)
	setShaderValueV         func(shader Shader, locIndex int32, value unsafe.Pointer, uniformType ShaderUniformDataType, count int32)
	setShaderValueMatrix    func(shader Shader, locIndex int32, mat Matrix)
	setShaderValueTexture   func(shader Shader, locIndex int32, texture Texture2D)
	unloadShader            func(shader Shader)

	getScreenToWorldRay   func(position Vector2, camera Camera) Ray
	getScreenToWorldRayEx func(position Vector2, camera Camera, width, height int32) Ray
	getWorldToScreen      func(position Vector3, camera Camera) Vector2
	getWorldToScreenEx    func(position Vector3, camera Camera, width, height int32) Vector2
	getWorldToScreen2D    func(position Vector2, camera Camera2D) Vector2
	getScreenToWorld2D    func(position Vector2, camera Camera2D) Vector2
	getCameraMatrix       func(camera Camera) Matrix
	getCameraMatrix2D     func(camera Camera2D) Matrix

	setTargetFPS         func(fps int32)
	getFrameTime         func() float32
	getTime              func() float64
	getFPS               func() int32
	swapScreenBuffer     func()
	pollInputEvents      func()
	waitTime             func(seconds float64)
	setRandomSeed        func(seed uint32)
	getRandomValue       func(min, max int32) int32
	loadRandomSequence   func(count uint32, min, max int32) unsafe.Pointer
	unloadRandomSequence func(sequence unsafe.Pointer)
	takeScreenshot       func(fileName *byte)
	setConfigFlags       func(flags ConfigFlags)
	openURL              func(url *byte)
	traceLog             func(logLevel TraceLogLevel, text *byte)
	setTraceLogLevel     func(logLevel TraceLogLevel)
	memAlloc             func(size uint32) unsafe.Pointer
	memRealloc           func(ptr unsafe.Pointer, size uint32) unsafe.Pointer
	memFree              func(ptr unsafe.Pointer)
)

var rcoreSymbols = []native.Symbol{
	{"InitWindow", &initWindow},
	{"CloseWindow", &closeWindow},
	{"WindowShouldClose", &windowShouldClose},
	{"IsWindowReady", &isWindowReady},
	{"IsWindowFullscreen", &isWindowFullscreen},
	{"IsWindowHidden", &isWindowHidden},
	{"IsWindowMinimized", &isWindowMinimized},
	{"IsWindowMaximized", &isWindowMaximized},
	{"IsWindowFocused", &isWindowFocused},
	{"IsWindowResized", &isWindowResized},
	{"IsWindowState", &isWindowState},
	{"SetWindowState", &setWindowState},
	{"ClearWindowState", &clearWindowState},
	{"ToggleFullscreen", &toggleFullscreen},
	{"ToggleBorderlessWindowed", &toggleBorderlessWindowed},
	{"MaximizeWindow", &maximizeWindow},
	{"MinimizeWindow", &minimizeWindow},
	{"RestoreWindow", &restoreWindow},
	{"SetWindowIcon", &setWindowIcon},
	{"SetWindowIcons", &setWindowIcons},
	{"SetWindowTitle", &setWindowTitle},
	{"SetWindowPosition", &setWindowPosition},
	{"SetWindowMonitor", &setWindowMonitor},
	{"SetWindowMinSize", &setWindowMinSize},
	{"SetWindowMaxSize", &setWindowMaxSize},
	{"SetWindowSize", &setWindowSize},
	{"SetWindowOpacity", &setWindowOpacity},
	{"SetWindowFocused", &setWindowFocused},
	{"GetWindowHandle", &getWindowHandle},
	{"GetScreenWidth", &getScreenWidth},
	{"GetScreenHeight", &getScreenHeight},
	{"GetRenderWidth", &getRenderWidth},
	{"GetRenderHeight", &getRenderHeight},
	{"GetMonitorCount", &getMonitorCount},
	{"GetCurrentMonitor", &getCurrentMonitor},
	{"GetMonitorPosition", &getMonitorPosition},
	{"GetMonitorWidth", &getMonitorWidth},
	{"GetMonitorHeight", &getMonitorHeight},
	{"GetMonitorPhysicalWidth", &getMonitorPhysicalWidth},
	{"GetMonitorPhysicalHeight", &getMonitorPhysicalHeight},
	{"GetMonitorRefreshRate", &getMonitorRefreshRate},
	{"GetWindowPosition", &getWindowPosition},
	{"GetWindowScaleDPI", &getWindowScaleDPI},
	{"GetMonitorName", &getMonitorName},
	{"SetClipboardText", &setClipboardText},
	{"GetClipboardText", &getClipboardText},
	{"EnableEventWaiting", &enableEventWaiting},
	{"DisableEventWaiting", &disableEventWaiting},

	{"ShowCursor", &showCursor},
	{"HideCursor", &hideCursor},
	{"IsCursorHidden", &isCursorHidden},
	{"EnableCursor", &enableCursor},
	{"DisableCursor", &disableCursor},
	{"IsCursorOnScreen", &isCursorOnScreen},

	{"ClearBackground", &clearBackground},
	{"BeginDrawing", &beginDrawing},
	{"EndDrawing", &endDrawing},
	{"BeginMode2D", &beginMode2D},
	{"EndMode2D", &endMode2D},
	{"BeginMode3D", &beginMode3D},
	{"EndMode3D", &endMode3D},
	{"BeginTextureMode", &beginTextureMode},
	{"EndTextureMode", &endTextureMode},
	{"BeginShaderMode", &beginShaderMode},
	{"EndShaderMode", &endShaderMode},
	{"BeginBlendMode", &beginBlendMode},
	{"EndBlendMode", &endBlendMode},
	{"BeginScissorMode", &beginScissorMode},
	{"EndScissorMode", &endScissorMode},
	{"BeginVrStereoMode", &beginVrStereoMode},
	{"EndVrStereoMode", &endVrStereoMode},
	{"LoadVrStereoConfig", &loadVrStereoConfig},
	{"UnloadVrStereoConfig", &unloadVrStereoConfig},

	{"LoadShader", &loadShader},
	{"LoadShaderFromMemory", &loadShaderFromMemory},
	{"IsShaderReady", &isShaderReady},
	{"GetShaderLocation", &getShaderLocation},
	{"GetShaderLocationAttrib", &getShaderLocationAttrib},
	{"SetShaderValue", &setShaderValue},
	{"SetShaderValueV", &setShaderValueV},
	{"SetShaderValueMatrix", &setShaderValueMatrix},
	{"SetShaderValueTexture", &setShaderValueTexture},
	{"UnloadShader", &unloadShader},

	{"GetScreenToWorldRay", &getScreenToWorldRay},
	{"GetScreenToWorldRayEx", &getScreenToWorldRayEx},
	{"GetWorldToScreen", &getWorldToScreen},
	{"GetWorldToScreenEx", &getWorldToScreenEx},
	{"GetWorldToScreen2D", &getWorldToScreen2D},
	{"GetScreenToWorld2D", &getScreenToWorld2D},
	{"GetCameraMatrix", &getCameraMatrix},
	{"GetCameraMatrix2D", &getCameraMatrix2D},

	{"SetTargetFPS", &setTargetFPS},
	{"GetFrameTime", &getFrameTime},
	{"GetTime", &getTime},
	{"GetFPS", &getFPS},
	{"SwapScreenBuffer", &swapScreenBuffer},
	{"PollInputEvents", &pollInputEvents},
	{"WaitTime", &waitTime},
	{"SetRandomSeed", &setRandomSeed},
	{"GetRandomValue", &getRandomValue},
	{"LoadRandomSequence", &loadRandomSequence},
	{"UnloadRandomSequence", &unloadRandomSequence},
	{"TakeScreenshot", &takeScreenshot},
	{"SetConfigFlags", &setConfigFlags},
	{"OpenURL", &openURL},
	{"TraceLog", &traceLog},
	{"SetTraceLogLevel", &setTraceLogLevel},
	{"MemAlloc", &memAlloc},
	{"MemRealloc", &memRealloc},
	{"MemFree", &memFree},
}

// InitWindow initializes the window and OpenGL context.
func InitWindow(width, height int32, title string) {
	t, release := native.CString(title)
	defer release()
	initWindow(width, height, t)
}

// CloseWindow closes the window and unloads the OpenGL context.
func CloseWindow() { closeWindow() }

// WindowShouldClose checks if the application should close (KEY_ESCAPE pressed or the close icon clicked).
func WindowShouldClose() bool { return windowShouldClose() }

func IsWindowReady() bool      { return isWindowReady() }
func IsWindowFullscreen() bool { return isWindowFullscreen() }
func IsWindowHidden() bool     { return isWindowHidden() }
func IsWindowMinimized() bool  { return isWindowMinimized() }
func IsWindowMaximized() bool  { return isWindowMaximized() }
func IsWindowFocused() bool    { return isWindowFocused() }

// IsWindowResized checks if the window has been resized last frame.
func IsWindowResized() bool { return isWindowResized() }

func IsWindowState(flag ConfigFlags) bool { return isWindowState(flag) }
func SetWindowState(flags ConfigFlags)    { setWindowState(flags) }
func ClearWindowState(flags ConfigFlags)  { clearWindowState(flags) }
func ToggleFullscreen()                   { toggleFullscreen() }
func ToggleBorderlessWindowed()           { toggleBorderlessWindowed() }
func MaximizeWindow()                     { maximizeWindow() }
func MinimizeWindow()                     { minimizeWindow() }
func RestoreWindow()                      { restoreWindow() }

// SetWindowIcon sets the window icon. The image must be in
// PixelFormatUncompressedR8G8B8A8.
func SetWindowIcon(image Image) { setWindowIcon(image) }

// SetWindowIcons sets the window icon from several sizes; the platform picks
// the best fit. Every image must be in PixelFormatUncompressedR8G8B8A8.
func SetWindowIcons(images []Image) {
	p, release := native.PinSlice(images)
	defer release()
	setWindowIcons(p, int32(len(images)))
}

func SetWindowTitle(title string) {
	t, release := native.CString(title)
	defer release()
	setWindowTitle(t)
}

func SetWindowPosition(x, y int32)         { setWindowPosition(x, y) }
func SetWindowMonitor(monitor int32)       { setWindowMonitor(monitor) }
func SetWindowMinSize(width, height int32) { setWindowMinSize(width, height) }
func SetWindowMaxSize(width, height int32) { setWindowMaxSize(width, height) }
func SetWindowSize(width, height int32)    { setWindowSize(width, height) }
func SetWindowOpacity(opacity float32)     { setWindowOpacity(opacity) }
func SetWindowFocused()                    { setWindowFocused() }

// GetWindowHandle returns the native window handle (HWND, NSWindow, ...).
func GetWindowHandle() unsafe.Pointer { return getWindowHandle() }

func GetScreenWidth() int32  { return getScreenWidth() }
func GetScreenHeight() int32 { return getScreenHeight() }

// GetRenderWidth returns the current render width, which accounts for HiDPI.
func GetRenderWidth() int32  { return getRenderWidth() }
func GetRenderHeight() int32 { return getRenderHeight() }

func GetMonitorCount() int32                       { return getMonitorCount() }
func GetCurrentMonitor() int32                     { return getCurrentMonitor() }
func GetMonitorPosition(monitor int32) Vector2     { return getMonitorPosition(monitor) }
func GetMonitorWidth(monitor int32) int32          { return getMonitorWidth(monitor) }
func GetMonitorHeight(monitor int32) int32         { return getMonitorHeight(monitor) }
func GetMonitorPhysicalWidth(monitor int32) int32  { return getMonitorPhysicalWidth(monitor) }
func GetMonitorPhysicalHeight(monitor int32) int32 { return getMonitorPhysicalHeight(monitor) }
func GetMonitorRefreshRate(monitor int32) int32    { return getMonitorRefreshRate(monitor) }
func GetWindowPosition() Vector2                   { return getWindowPosition() }
func GetWindowScaleDPI() Vector2                   { return getWindowScaleDPI() }

// GetMonitorName returns the UTF-8 name of the monitor, or "" if the
// monitor does not exist.
func GetMonitorName(monitor int32) string {
	return native.GoString(getMonitorName(monitor))
}

func SetClipboardText(text string) {
	t, release := native.CString(text)
	defer release()
	setClipboardText(t)
}

// GetClipboardText returns the clipboard contents, or "" when it holds no text.
func GetClipboardText() string {
	return native.GoString(getClipboardText())
}

// EnableEventWaiting makes EndDrawing wait for input events instead of
// polling.
func EnableEventWaiting()  { enableEventWaiting() }
func DisableEventWaiting() { disableEventWaiting() }

func ShowCursor()            { showCursor() }
func HideCursor()            { hideCursor() }
func IsCursorHidden() bool   { return isCursorHidden() }
func EnableCursor()          { enableCursor() }
func DisableCursor()         { disableCursor() }
func IsCursorOnScreen() bool { return isCursorOnScreen() }

func ClearBackground(color Color) { clearBackground(color) }

// BeginDrawing sets up the canvas to start drawing.
func BeginDrawing() { beginDrawing() }

// EndDrawing ends canvas drawing and swaps buffers.
func EndDrawing() { endDrawing() }

func BeginMode2D(camera Camera2D)             { beginMode2D(camera) }
func EndMode2D()                              { endMode2D() }
func BeginMode3D(camera Camera3D)             { beginMode3D(camera) }
func EndMode3D()                              { endMode3D() }
func BeginTextureMode(target RenderTexture2D) { beginTextureMode(target) }
func EndTextureMode()                         { endTextureMode() }
func BeginShaderMode(shader Shader)           { beginShaderMode(shader) }
func EndShaderMode()                          { endShaderMode() }
func BeginBlendMode(mode BlendMode)           { beginBlendMode(mode) }
func EndBlendMode()                           { endBlendMode() }

func BeginScissorMode(x, y, width, height int32) { beginScissorMode(x, y, width, height) }
func EndScissorMode()                            { endScissorMode() }

func BeginVrStereoMode(config VrStereoConfig)               { beginVrStereoMode(config) }
func EndVrStereoMode()                                      { endVrStereoMode() }
func LoadVrStereoConfig(device VrDeviceInfo) VrStereoConfig { return loadVrStereoConfig(device) }
func UnloadVrStereoConfig(config VrStereoConfig)            { unloadVrStereoConfig(config) }

// LoadShader loads a shader from files and binds the default locations. An
// empty file name selects raylib's default stage.
func LoadShader(vsFileName, fsFileName string) Shader {
	vs, releaseVS := native.CStringOrNil(vsFileName)
	defer releaseVS()
	fs, releaseFS := native.CStringOrNil(fsFileName)
	defer releaseFS()
	return loadShader(vs, fs)
}

// LoadShaderFromMemory loads a shader from source code. An empty string
// selects raylib's default stage.
func LoadShaderFromMemory(vsCode, fsCode string) Shader {
	vs, releaseVS := native.CStringOrNil(vsCode)
	defer releaseVS()
	fs, releaseFS := native.CStringOrNil(fsCode)
	defer releaseFS()
	return loadShaderFromMemory(vs, fs)
}

// IsShaderReady checks if a shader is valid and loaded on the GPU.
func IsShaderReady(shader Shader) bool { return isShaderReady(shader) }

// GetShaderLocation returns the location of a uniform, or -1 if the shader
// has none by that name.
func GetShaderLocation(shader Shader, uniformName string) int32 {
	n, release := native.CString(uniformName)
	defer release()
	return getShaderLocation(shader, n)
}

func GetShaderLocationAttrib(shader Shader, attribName string) int32 {
	n, release := native.CString(attribName)
	defer release()
	return getShaderLocationAttrib(shader, n)
}

// SetShaderValue sets a uniform value. T must match uniformType, for example
// float32 for ShaderUniformFloat or Vector3 for ShaderUniformVec3.
func SetShaderValue[T any](shader Shader, locIndex int32, value T, uniformType ShaderUniformDataType) {
	v, release := native.PinValue(&value)
	defer release()
	setShaderValue(shader, locIndex, unsafe.Pointer(v), uniformType)
}

// SetShaderValueV sets a uniform array; count is len(values).
func SetShaderValueV[T any](shader Shader, locIndex int32, values []T, uniformType ShaderUniformDataType) {
	p, release := native.PinSlice(values)
	defer release()
	setShaderValueV(shader, locIndex, p, uniformType, int32(len(values)))
}

func SetShaderValueMatrix(shader Shader, locIndex int32, mat Matrix) {
	setShaderValueMatrix(shader, locIndex, mat)
}

func SetShaderValueTexture(shader Shader, locIndex int32, texture Texture2D) {
	setShaderValueTexture(shader, locIndex, texture)
}

func UnloadShader(shader Shader) { unloadShader(shader) }

// GetMouseRay is the name GetScreenToWorldRay had before raylib 5.5. The
// library only exports it as a macro, so it forwards here.
func GetMouseRay(position Vector2, camera Camera) Ray {
	return getScreenToWorldRay(position, camera)
}

// GetScreenToWorldRay returns a ray trace from a screen position (i.e. the
// mouse) into the 3D scene.
func GetScreenToWorldRay(position Vector2, camera Camera) Ray {
	return getScreenToWorldRay(position, camera)
}

func GetScreenToWorldRayEx(position Vector2, camera Camera, width, height int32) Ray {
	return getScreenToWorldRayEx(position, camera, width, height)
}

func GetWorldToScreen(position Vector3, camera Camera) Vector2 {
	return getWorldToScreen(position, camera)
}

func GetWorldToScreenEx(position Vector3, camera Camera, width, height int32) Vector2 {
	return getWorldToScreenEx(position, camera, width, height)
}

func GetWorldToScreen2D(position Vector2, camera Camera2D) Vector2 {
	return getWorldToScreen2D(position, camera)
}

func GetScreenToWorld2D(position Vector2, camera Camera2D) Vector2 {
	return getScreenToWorld2D(position, camera)
}

func GetCameraMatrix(camera Camera) Matrix     { return getCameraMatrix(camera) }
func GetCameraMatrix2D(camera Camera2D) Matrix { return getCameraMatrix2D(camera) }

func SetTargetFPS(fps int32)    { setTargetFPS(fps) }
func GetFrameTime() float32     { return getFrameTime() }
func GetTime() float64          { return getTime() }
func GetFPS() int32             { return getFPS() }
func SwapScreenBuffer()         { swapScreenBuffer() }
func PollInputEvents()          { pollInputEvents() }
func WaitTime(seconds float64)  { waitTime(seconds) }
func SetRandomSeed(seed uint32) { setRandomSeed(seed) }

// GetRandomValue returns a random value in [min, max], both included.
func GetRandomValue(min, max int32) int32 { return getRandomValue(min, max) }

// LoadRandomSequence returns count random values in [min, max] without
// repetition. It is nil when count exceeds the range.
func LoadRandomSequence(count uint32, min, max int32) []int32 {
	return native.LoadAndRelease(
		func() unsafe.Pointer { return loadRandomSequence(count, min, max) },
		unloadRandomSequence,
		func(p unsafe.Pointer) []int32 { return native.CopySlice[int32](p, int(count)) },
	)
}

// TakeScreenshot saves a PNG of the current screen to fileName.
func TakeScreenshot(fileName string) {
	n, release := native.CString(fileName)
	defer release()
	takeScreenshot(n)
}

// SetConfigFlags sets the init configuration flags. Call it before InitWindow.
func SetConfigFlags(flags ConfigFlags) { setConfigFlags(flags) }

// OpenURL opens url with the default system browser.
func OpenURL(url string) {
	u, release := native.CString(url)
	defer release()
	openURL(u)
}

// TraceLog writes text to raylib's log. The native function is printf-like;
// percent signs are escaped so it never reads a format argument.
func TraceLog(logLevel TraceLogLevel, text string) {
	t, release := native.CString(strings.ReplaceAll(text, "%", "%%"))
	defer release()
	traceLog(logLevel, t)
}

// SetTraceLogLevel sets the minimum level raylib logs at.
func SetTraceLogLevel(logLevel TraceLogLevel) { setTraceLogLevel(logLevel) }

// MemAlloc allocates size bytes with raylib's allocator. The memory is
// released with MemFree.
func MemAlloc(size uint32) unsafe.Pointer { return memAlloc(size) }

func MemRealloc(ptr unsafe.Pointer, size uint32) unsafe.Pointer { return memRealloc(ptr, size) }

func MemFree(ptr unsafe.Pointer) { memFree(ptr) }
